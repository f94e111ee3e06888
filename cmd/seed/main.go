package main

import (
	"context"
	"log"
	"time"

	"github.com/gecko-kitchen/backend/config"
	"github.com/gecko-kitchen/backend/internal/database"
	"github.com/gecko-kitchen/backend/internal/model"
	"github.com/gecko-kitchen/backend/internal/repository"
)

func strPtr(s string) *string { return &s }

func secsPtr(d time.Duration) *int64 {
	secs := int64(d.Seconds())
	return &secs
}

var sampleRecipes = []model.NewRecipe{
	{
		Name:            "Banana Pancakes",
		Description:     strPtr("Fluffy pancakes sweetened with ripe banana."),
		CookingTimeSecs: secsPtr(25 * time.Minute),
		MealType:        model.MealTypeBreakfast,
		Ingredients: []model.NewIngredient{
			{Name: "Flour", Quantity: 200, QuantityType: model.QuantityTypeGram},
			{Name: "Milk", Quantity: 300, QuantityType: model.QuantityTypeMilliliter},
			{Name: "Banana", Quantity: 2, QuantityType: model.QuantityTypeCount},
			{Name: "Egg", Quantity: 1, QuantityType: model.QuantityTypeCount},
		},
	},
	{
		Name:            "Greek Salad",
		Description:     strPtr("Crisp vegetables with feta and olives."),
		CookingTimeSecs: secsPtr(15 * time.Minute),
		MealType:        model.MealTypeLunch,
		Ingredients: []model.NewIngredient{
			{Name: "Cucumber", Quantity: 1, QuantityType: model.QuantityTypeCount},
			{Name: "Tomato", Quantity: 3, QuantityType: model.QuantityTypeCount},
			{Name: "Feta", Quantity: 150, QuantityType: model.QuantityTypeGram},
			{Name: "Olive Oil", Quantity: 0.05, QuantityType: model.QuantityTypeLiter},
		},
	},
	{
		Name:            "Pasta Bolognese",
		Description:     strPtr("Slow-simmered meat sauce over spaghetti."),
		CookingTimeSecs: secsPtr(90 * time.Minute),
		MealType:        model.MealTypeDinner,
		Ingredients: []model.NewIngredient{
			{Name: "Spaghetti", Quantity: 500, QuantityType: model.QuantityTypeGram},
			{Name: "Ground Beef", Quantity: 0.5, QuantityType: model.QuantityTypeKilo},
			{Name: "Tomato Passata", Quantity: 700, QuantityType: model.QuantityTypeMilliliter},
		},
	},
	{
		Name:     "Miso Soup",
		MealType: model.MealTypeDinner,
		Ingredients: []model.NewIngredient{
			{Name: "Miso Paste", Quantity: 60, QuantityType: model.QuantityTypeGram},
			{Name: "Water", Quantity: 1, QuantityType: model.QuantityTypeLiter},
			{Name: "Tofu", Quantity: 200, QuantityType: model.QuantityTypeGram},
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	repo := repository.NewPostgresRecipeRepository(db)
	ctx := context.Background()

	for _, recipe := range sampleRecipes {
		created, err := repo.CreateRecipe(ctx, recipe)
		if err != nil {
			log.Fatalf("failed to seed recipe %q: %v", recipe.Name, err)
		}
		log.Printf("seeded recipe %q with id %d (%d ingredients)", created.Name, created.RecipeID, len(created.Ingredients))
	}
}
