package domain

// DefaultCategory is one entry of the starter catalog given to every new user.
type DefaultCategory struct {
	Name  string
	Type  string
	Color string
}

var defaultCategories = [...]DefaultCategory{
	{Name: "급여", Type: TypeIncome, Color: "#22C55E"},
	{Name: "부수입", Type: TypeIncome, Color: "#16A34A"},
	{Name: "용돈", Type: TypeIncome, Color: "#4ADE80"},
	{Name: "상여금", Type: TypeIncome, Color: "#15803D"},
	{Name: "금융수입", Type: TypeIncome, Color: "#3182F6"},
	{Name: "환급", Type: TypeIncome, Color: "#06B6D4"},
	{Name: "기타수입", Type: TypeIncome, Color: "#8B95A1"},

	{Name: "식비", Type: TypeExpense, Color: "#F04452"},
	{Name: "카페", Type: TypeExpense, Color: "#A16207"},
	{Name: "교통", Type: TypeExpense, Color: "#3182F6"},
	{Name: "쇼핑", Type: TypeExpense, Color: "#EC4899"},
	{Name: "주거/통신", Type: TypeExpense, Color: "#8B5CF6"},
	{Name: "의료", Type: TypeExpense, Color: "#EF4444"},
	{Name: "문화/여가", Type: TypeExpense, Color: "#F59E0B"},
	{Name: "교육", Type: TypeExpense, Color: "#0EA5E9"},
	{Name: "생활/마트", Type: TypeExpense, Color: "#10B981"},
	{Name: "기타지출", Type: TypeExpense, Color: "#8B95A1"},
}

// DefaultCategories returns a copy of the starter catalog in seeding order.
func DefaultCategories() []DefaultCategory {
	out := make([]DefaultCategory, len(defaultCategories))
	copy(out, defaultCategories[:])
	return out
}
