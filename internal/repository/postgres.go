package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gecko-kitchen/backend/internal/model"
)

// recipeSelect fetches recipes with their ingredients aggregated into a
// single JSON column, so a full listing is one round trip instead of a
// query per recipe. Ingredients are ordered inside the aggregate.
const recipeSelect = `
WITH ingredients_grouped AS (
    SELECT recipe_id, JSON_AGG(ROW_TO_JSON(i) ORDER BY i.ingredient_order) AS ingredients
    FROM ingredient i
    GROUP BY recipe_id
)
SELECT
    r.recipe_id,
    r.name,
    r.description,
    r.cooking_time_secs,
    r.meal_type,
    ig.ingredients
FROM recipe r
LEFT JOIN ingredients_grouped ig ON ig.recipe_id = r.recipe_id`

// searchPredicate ANDs the optional criteria. A NULL criterion short-circuits
// its predicate to true. The ingredient match is an EXISTS check so a recipe
// with several matching ingredients still yields a single row.
const searchPredicate = `
WHERE (@recipe_name::TEXT IS NULL OR r.name ILIKE '%' || @recipe_name || '%')
  AND (@ingredient_name::TEXT IS NULL OR EXISTS (
      SELECT 1 FROM ingredient i2
      WHERE i2.recipe_id = r.recipe_id
        AND i2.name ILIKE '%' || @ingredient_name || '%'
  ))
  AND (@meal_type::meal_type IS NULL OR r.meal_type = @meal_type::meal_type)`

// recipeRow is the scan target for recipeSelect.
type recipeRow struct {
	RecipeID        int32
	Name            string
	Description     *string
	CookingTimeSecs *int64
	MealType        model.MealType
	Ingredients     model.IngredientRows
}

func (r recipeRow) toEntity() model.Recipe {
	ingredients := []model.Ingredient(r.Ingredients)
	if ingredients == nil {
		ingredients = []model.Ingredient{}
	}
	return model.Recipe{
		RecipeID:        r.RecipeID,
		Name:            r.Name,
		Description:     r.Description,
		CookingTimeSecs: r.CookingTimeSecs,
		MealType:        r.MealType,
		Ingredients:     ingredients,
	}
}

// PostgresRecipeRepository implements RecipeRepository against PostgreSQL.
type PostgresRecipeRepository struct {
	db *gorm.DB
}

// NewPostgresRecipeRepository creates a repository over an open connection
// pool.
func NewPostgresRecipeRepository(db *gorm.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// ListRecipes returns every recipe with its ingredients attached.
func (r *PostgresRecipeRepository) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var rows []recipeRow
	if err := r.db.WithContext(ctx).Raw(recipeSelect).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, row.toEntity())
	}
	return recipes, nil
}

// GetRecipe returns a single recipe by id, or ErrNotFound.
func (r *PostgresRecipeRepository) GetRecipe(ctx context.Context, recipeID int32) (model.Recipe, error) {
	var row recipeRow
	result := r.db.WithContext(ctx).Raw(recipeSelect+" WHERE r.recipe_id = ?", recipeID).Scan(&row)
	if result.Error != nil {
		return model.Recipe{}, fmt.Errorf("failed to get recipe %d: %w", recipeID, result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Recipe{}, ErrNotFound
	}
	return row.toEntity(), nil
}

// CreateRecipe inserts the recipe row and all its ingredient rows in one
// transaction and returns the persisted entity with generated ids.
func (r *PostgresRecipeRepository) CreateRecipe(ctx context.Context, entity model.NewRecipe) (model.Recipe, error) {
	var created model.Recipe

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row recipeRow
		err := tx.Raw(`
			INSERT INTO recipe (name, description, cooking_time_secs, meal_type)
			VALUES (?, ?, ?, ?)
			RETURNING recipe_id, name, description, cooking_time_secs, meal_type`,
			entity.Name, entity.Description, entity.CookingTimeSecs, entity.MealType,
		).Scan(&row).Error
		if err != nil {
			return fmt.Errorf("failed to insert recipe: %w", err)
		}

		ingredients, err := insertIngredients(tx, row.RecipeID, entity.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to insert ingredients: %w", err)
		}

		created = row.toEntity()
		created.Ingredients = ingredients
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}
	return created, nil
}

// UpdateRecipe replaces the recipe's scalar fields and its entire ingredient
// set in one transaction. The old ingredient rows are deleted and the new
// list reinserted, so this is a full replace, never a merge.
func (r *PostgresRecipeRepository) UpdateRecipe(ctx context.Context, recipeID int32, entity model.NewRecipe) (model.Recipe, error) {
	var updated model.Recipe

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row recipeRow
		result := tx.Raw(`
			UPDATE recipe SET
			    name = ?,
			    description = ?,
			    cooking_time_secs = ?,
			    meal_type = ?
			WHERE recipe_id = ?
			RETURNING recipe_id, name, description, cooking_time_secs, meal_type`,
			entity.Name, entity.Description, entity.CookingTimeSecs, entity.MealType, recipeID,
		).Scan(&row)
		if result.Error != nil {
			return fmt.Errorf("failed to update recipe %d: %w", recipeID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Exec(`DELETE FROM ingredient WHERE recipe_id = ?`, recipeID).Error; err != nil {
			return fmt.Errorf("failed to clear out old ingredients: %w", err)
		}

		ingredients, err := insertIngredients(tx, row.RecipeID, entity.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to insert ingredients: %w", err)
		}

		updated = row.toEntity()
		updated.Ingredients = ingredients
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}
	return updated, nil
}

// DeleteRecipe removes the recipe and all its ingredient rows in one
// transaction. Ingredients go first to satisfy the foreign key.
func (r *PostgresRecipeRepository) DeleteRecipe(ctx context.Context, recipeID int32) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM ingredient WHERE recipe_id = ?`, recipeID).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients: %w", err)
		}

		result := tx.Exec(`DELETE FROM recipe WHERE recipe_id = ?`, recipeID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete recipe %d: %w", recipeID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SearchRecipes returns the recipes matching all provided criteria.
func (r *PostgresRecipeRepository) SearchRecipes(ctx context.Context, criteria SearchCriteria) ([]model.Recipe, error) {
	var rows []recipeRow
	err := r.db.WithContext(ctx).Raw(recipeSelect+searchPredicate,
		sql.Named("recipe_name", criteria.RecipeName),
		sql.Named("ingredient_name", criteria.IngredientName),
		sql.Named("meal_type", criteria.MealType),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, row.toEntity())
	}
	return recipes, nil
}

// insertIngredients bulk-inserts the ingredient rows for a recipe inside the
// caller's transaction, assigning ingredient_order from the slice index. An
// INSERT with zero value rows is invalid SQL, so an empty list skips the
// statement entirely and yields an empty result.
func insertIngredients(tx *gorm.DB, recipeID int32, ingredients []model.NewIngredient) ([]model.Ingredient, error) {
	if len(ingredients) == 0 {
		return []model.Ingredient{}, nil
	}

	var (
		query strings.Builder
		args  []interface{}
	)
	query.WriteString(`INSERT INTO ingredient (recipe_id, ingredient_order, name, quantity, quantity_type) VALUES `)
	for i, ingredient := range ingredients {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, recipeID, int32(i), ingredient.Name, ingredient.Quantity, ingredient.QuantityType)
	}
	query.WriteString(` RETURNING ingredient_id, recipe_id, ingredient_order, name, quantity, quantity_type`)

	var rows []model.Ingredient
	if err := tx.Raw(query.String(), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
