// Seeds the catalog with the starter internal recipes. Safe to run
// repeatedly: it does nothing when the table already has rows.
package main

import (
	"log"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/database"
	"github.com/recipedex/backend/internal/model"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	var count int64
	if err := db.Model(&model.Recipe{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count recipes: %v", err)
	}
	if count > 0 {
		log.Printf("Database already has %d recipes, skipping seed", count)
		return
	}

	recipes := sampleRecipes()
	if err := db.Create(&recipes).Error; err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}
	log.Printf("Seeded %d recipes", len(recipes))
}

func sampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			Title: "Classic Chocolate Chip Cookies",
			Ingredients: model.JSONStringArray{
				"2 1/4 cups all-purpose flour",
				"1 tsp baking soda",
				"1 tsp salt",
				"1 cup butter, softened",
				"3/4 cup granulated sugar",
				"3/4 cup brown sugar",
				"2 large eggs",
				"2 tsp vanilla extract",
				"2 cups chocolate chips",
			},
			Steps: model.JSONStringArray{
				"Preheat oven to 375°F (190°C)",
				"Mix flour, baking soda, and salt in a bowl",
				"Cream butter and sugars until fluffy",
				"Beat in eggs and vanilla",
				"Gradually mix in flour mixture",
				"Stir in chocolate chips",
				"Drop rounded tablespoons onto ungreased baking sheet",
				"Bake 9-11 minutes until golden brown",
				"Cool on baking sheet for 2 minutes, then transfer to wire rack",
			},
			PrepTime:   "15 minutes",
			CookTime:   "10 minutes",
			Difficulty: "easy",
			Cuisine:    "American",
		},
		{
			Title: "Spaghetti Carbonara",
			Ingredients: model.JSONStringArray{
				"400g spaghetti",
				"200g pancetta or guanciale, diced",
				"4 large eggs",
				"100g Pecorino Romano cheese, grated",
				"Black pepper to taste",
				"Salt for pasta water",
			},
			Steps: model.JSONStringArray{
				"Bring a large pot of salted water to boil",
				"Cook spaghetti according to package directions",
				"Meanwhile, cook pancetta in a large skillet until crispy",
				"In a bowl, whisk eggs with grated cheese and black pepper",
				"Reserve 1 cup pasta water, then drain pasta",
				"Add hot pasta to skillet with pancetta",
				"Remove from heat and quickly stir in egg mixture",
				"Add pasta water as needed to create creamy sauce",
				"Serve immediately with extra cheese and pepper",
			},
			PrepTime:   "10 minutes",
			CookTime:   "15 minutes",
			Difficulty: "medium",
			Cuisine:    "Italian",
		},
		{
			Title: "Chicken Tikka Masala",
			Ingredients: model.JSONStringArray{
				"1 lb chicken breast, cubed",
				"1 cup plain yogurt",
				"2 tbsp tikka masala spice blend",
				"1 onion, diced",
				"3 cloves garlic, minced",
				"1 inch ginger, grated",
				"1 can crushed tomatoes",
				"1 cup heavy cream",
				"2 tbsp vegetable oil",
				"Salt to taste",
				"Fresh cilantro for garnish",
			},
			Steps: model.JSONStringArray{
				"Marinate chicken in yogurt and half the spice blend for 30 minutes",
				"Heat oil in a large pan over medium-high heat",
				"Cook marinated chicken until golden, then set aside",
				"In same pan, sauté onion until soft",
				"Add garlic, ginger, and remaining spices, cook 1 minute",
				"Add tomatoes and simmer 10 minutes",
				"Stir in cream and return chicken to pan",
				"Simmer 10-15 minutes until chicken is cooked through",
				"Garnish with cilantro and serve with rice",
			},
			PrepTime:   "45 minutes",
			CookTime:   "30 minutes",
			Difficulty: "medium",
			Cuisine:    "Indian",
		},
		{
			Title: "Caesar Salad",
			Ingredients: model.JSONStringArray{
				"1 large head romaine lettuce, chopped",
				"1/2 cup Parmesan cheese, grated",
				"1/4 cup croutons",
				"2 anchovy fillets (optional)",
				"2 cloves garlic",
				"1/4 cup mayonnaise",
				"2 tbsp lemon juice",
				"1 tsp Worcestershire sauce",
				"1/4 tsp black pepper",
			},
			Steps: model.JSONStringArray{
				"Wash and dry romaine lettuce thoroughly",
				"Make dressing by mashing garlic and anchovies",
				"Whisk in mayonnaise, lemon juice, and Worcestershire",
				"Season with black pepper",
				"Toss lettuce with dressing",
				"Top with Parmesan cheese and croutons",
				"Serve immediately",
			},
			PrepTime:   "15 minutes",
			CookTime:   "0 minutes",
			Difficulty: "easy",
			Cuisine:    "Italian",
		},
	}
}
