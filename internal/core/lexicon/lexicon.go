// Package lexicon 提供管線共用的靜態詞彙表。
// 所有表格一經建立即視為唯讀，可安全地被多個請求同時使用；
// 測試可注入替代詞彙表而不需改動任何邏輯。
package lexicon

// CategoryEntry 食材分類關鍵字（順序即優先序）
type CategoryEntry struct {
	Name     string
	Keywords []string
}

// SectionEntry 賣場區域關鍵字（順序即固定走道順序）
type SectionEntry struct {
	Name     string
	Emoji    string
	Keywords []string
}

// Tables 管線使用的全部詞彙表
type Tables struct {
	// Categories 依優先序排列的分類表，前面的分類先比對
	Categories []CategoryEntry
	// Sections 依走道順序排列的賣場區域表
	Sections []SectionEntry
	// Synonyms 同義詞標準化表（鍵為小寫）
	Synonyms map[string]string
	// Exclusions 烹飪動作、器具等非食材詞彙（子字串比對）
	Exclusions []string
	// Staples 常被省略的基本食材，整篇文字掃描補入
	Staples []string
	// RecipeIndicators 信心估算用的食譜指示詞
	RecipeIndicators []string
	// Units 數量樣式支援的單位（長詞在前，依序組成正則）
	Units []string
	// ActionVerbs 引導食材名稱的動詞（add garlic、with basil ...）
	ActionVerbs []string
	// LeadingTokens 清理名稱時要剝除的冠詞、連接詞
	LeadingTokens []string
}

// DefaultCategory 無法分類時的預設值
const DefaultCategory = "Other"

// DefaultSection 無法對應賣場區域時的預設值
const DefaultSection = "Other"

// Default 建立正式環境的詞彙表
func Default() *Tables {
	return &Tables{
		Categories: []CategoryEntry{
			{Name: "Produce", Keywords: []string{
				"apple", "banana", "orange", "lemon", "lime", "berr", "grape",
				"melon", "avocado", "tomato", "potato", "onion", "garlic",
				"carrot", "celery", "lettuce", "spinach", "kale", "broccoli",
				"cauliflower", "cucumber", "zucchini", "mushroom", "corn",
				"bell pepper", "jalapeno", "cilantro", "parsley", "basil",
				"mint", "ginger", "cabbage", "herb", "scallion", "leek",
				"asparagus", "green bean", "peach", "pear", "mango",
			}},
			{Name: "Meat & Seafood", Keywords: []string{
				"chicken", "beef", "pork", "turkey", "lamb", "bacon",
				"sausage", "ham", "steak", "ground", "fish", "salmon",
				"tuna", "shrimp", "crab", "scallop", "tilapia", "cod",
			}},
			{Name: "Dairy & Eggs", Keywords: []string{
				"milk", "cheese", "yogurt", "butter", "cream", "egg",
				"mozzarella", "cheddar", "parmesan", "feta", "ricotta",
				"sour cream", "half and half",
			}},
			{Name: "Pantry", Keywords: []string{
				"flour", "sugar", "salt", "pepper", "oil", "rice", "pasta",
				"noodle", "vinegar", "spice", "cumin", "paprika", "oregano",
				"thyme", "rosemary", "cinnamon", "vanilla", "baking",
				"honey", "oat", "cereal", "quinoa", "lentil", "soy sauce",
				"mustard", "ketchup", "mayo", "peanut butter", "nut",
			}},
			{Name: "Canned/Jarred", Keywords: []string{
				"canned", "jarred", "bean", "chickpea", "broth", "stock",
				"tomato sauce", "tomato paste", "salsa", "olives", "pickles",
				"coconut milk", "jam", "jelly",
			}},
			{Name: "Frozen", Keywords: []string{
				"frozen", "ice cream", "popsicle",
			}},
			{Name: "Bakery", Keywords: []string{
				"bread", "bagel", "bun", "roll", "tortilla", "pita",
				"muffin", "croissant", "cake", "pie crust", "baguette",
			}},
			{Name: "Beverages", Keywords: []string{
				"juice", "soda", "coffee", "tea", "wine", "beer",
				"sparkling water", "kombucha",
			}},
		},
		Sections: []SectionEntry{
			{Name: "Produce", Emoji: "🥬", Keywords: []string{
				"apple", "banana", "orange", "lemon", "lime", "berr", "grape",
				"melon", "avocado", "tomato", "potato", "onion", "garlic",
				"carrot", "celery", "lettuce", "spinach", "kale", "broccoli",
				"cauliflower", "cucumber", "zucchini", "mushroom", "corn",
				"bell pepper", "cilantro", "parsley", "basil", "mint",
				"ginger", "cabbage", "herb", "scallion", "leek", "asparagus",
				"green bean", "peach", "pear", "mango",
			}},
			{Name: "Meat & Seafood", Emoji: "🥩", Keywords: []string{
				"chicken", "beef", "pork", "turkey", "lamb", "bacon",
				"sausage", "ham", "steak", "ground", "fish", "salmon",
				"tuna", "shrimp", "crab", "scallop", "tilapia", "cod",
			}},
			{Name: "Dairy", Emoji: "🥛", Keywords: []string{
				"milk", "cheese", "yogurt", "butter", "cream", "egg",
				"mozzarella", "cheddar", "parmesan", "feta", "ricotta",
				"sour cream",
			}},
			{Name: "Bakery", Emoji: "🍞", Keywords: []string{
				"bread", "bagel", "bun", "roll", "tortilla", "pita",
				"muffin", "croissant", "cake", "baguette",
			}},
			{Name: "Canned Goods", Emoji: "🥫", Keywords: []string{
				"canned", "jarred", "bean", "chickpea", "broth", "stock",
				"tomato sauce", "tomato paste", "salsa", "olives", "pickles",
				"coconut milk", "jam", "jelly",
			}},
			{Name: "Frozen", Emoji: "🧊", Keywords: []string{
				"frozen", "ice cream", "popsicle",
			}},
			{Name: "Pantry", Emoji: "🧂", Keywords: []string{
				"flour", "sugar", "salt", "pepper", "oil", "rice", "pasta",
				"noodle", "vinegar", "spice", "cumin", "paprika", "oregano",
				"thyme", "rosemary", "cinnamon", "vanilla", "baking",
				"honey", "oat", "cereal", "quinoa", "lentil", "soy sauce",
				"mustard", "ketchup", "mayo", "peanut butter", "nut",
			}},
			{Name: "Beverages", Emoji: "🥤", Keywords: []string{
				"juice", "soda", "coffee", "tea", "wine", "beer",
				"sparkling water", "kombucha",
			}},
			{Name: "Other", Emoji: "🛒", Keywords: nil},
		},
		Synonyms: map[string]string{
			"roma tomatoes":          "tomatoes",
			"roma tomato":            "tomatoes",
			"cherry tomatoes":        "tomatoes",
			"grape tomatoes":         "tomatoes",
			"kosher salt":            "salt",
			"sea salt":               "salt",
			"table salt":             "salt",
			"chicken breast":         "chicken",
			"chicken breasts":        "chicken",
			"chicken thighs":         "chicken",
			"chicken thigh":          "chicken",
			"extra virgin olive oil": "olive oil",
			"evoo":                   "olive oil",
			"all-purpose flour":      "flour",
			"all purpose flour":      "flour",
			"ap flour":               "flour",
			"unsalted butter":        "butter",
			"salted butter":          "butter",
			"spring onions":          "green onions",
			"scallions":              "green onions",
			"yellow onion":           "onion",
			"yellow onions":          "onion",
			"white onion":            "onion",
			"garlic cloves":          "garlic",
			"garlic clove":           "garlic",
			"minced garlic":          "garlic",
			"black pepper":           "pepper",
			"ground black pepper":    "pepper",
			"heavy whipping cream":   "heavy cream",
			"parmesan cheese":        "parmesan",
			"parmigiano reggiano":    "parmesan",
			"fresh basil":            "basil",
			"fresh parsley":          "parsley",
			"fresh cilantro":         "cilantro",
		},
		Exclusions: []string{
			"cook", "bake", "fry", "grill", "boil", "simmer", "saute",
			"roast", "heat", "oven", "stove", "pan", "pot", "skillet",
			"bowl", "knife", "whisk", "blender", "mix", "stir",
			"minute", "hour", "degree", "serve", "enjoy", "recipe",
			"instruction", "preparation", "step",
		},
		Staples: []string{
			"salt", "pepper", "olive oil", "garlic", "onion",
			"butter", "cheese", "herbs", "spices",
		},
		RecipeIndicators: []string{
			"recipe", "cook", "ingredients", "tbsp", "cup", "oz", "minutes",
		},
		Units: []string{
			"tablespoons", "tablespoon", "teaspoons", "teaspoon",
			"kilograms", "kilogram", "packages", "package", "pounds",
			"pound", "ounces", "ounce", "slices", "slice", "pieces",
			"piece", "cloves", "clove", "liters", "liter", "grams",
			"gram", "bunches", "bunch", "sticks", "stick", "cups",
			"cup", "cans", "can", "tbsp", "tsp", "lbs", "lb", "oz",
			"ml", "kg", "g", "l",
		},
		ActionVerbs: []string{
			"add", "with", "using", "include", "contains",
		},
		LeadingTokens: []string{
			"a", "an", "the", "some", "of", "and", "or", "your", "my",
		},
	}
}

// SectionNames 依走道順序回傳全部區域名稱
func (t *Tables) SectionNames() []string {
	names := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		names = append(names, s.Name)
	}
	return names
}
