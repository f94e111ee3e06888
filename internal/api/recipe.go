package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gecko-kitchen/backend/internal/service"
)

// RecipeHandler exposes the recipe service over HTTP.
type RecipeHandler struct {
	service service.IRecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates a handler over the given service.
func NewRecipeHandler(svc service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes attaches the recipe routes to a router group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// ListRecipes handles GET /recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.service.ListRecipes(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeResponses(recipes)})
}

// SearchRecipes handles GET /recipes/search. Absent query parameters are
// no-op criteria; provided ones are ANDed.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var criteria service.SearchCriteria

	if name := c.Query("name"); name != "" {
		criteria.RecipeName = &name
	}
	if ingredient := c.Query("ingredient"); ingredient != "" {
		criteria.IngredientName = &ingredient
	}
	if mealType := c.Query("meal_type"); mealType != "" {
		switch mt := service.MealType(mealType); mt {
		case service.Breakfast, service.Lunch, service.Dinner:
			criteria.MealType = &mt
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
			return
		}
	}

	recipes, err := h.service.SearchRecipes(c.Request.Context(), criteria)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeResponses(recipes)})
}

// GetRecipe handles GET /recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	recipe, err := h.service.GetRecipe(c.Request.Context(), recipeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// CreateRecipe handles POST /recipes.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.service.CreateRecipe(c.Request.Context(), service.NewRecipe{
		Name:        req.Name,
		Description: req.Description,
		CookingTime: toCookingTime(req.CookingTimeSecs),
		MealType:    service.MealType(req.MealType),
		Ingredients: toDomainIngredients(req.Ingredients),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// UpdateRecipe handles PUT /recipes/:id.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.service.UpdateRecipe(c.Request.Context(), service.Recipe{
		RecipeID:    recipeID,
		Name:        req.Name,
		Description: req.Description,
		CookingTime: toCookingTime(req.CookingTimeSecs),
		MealType:    service.MealType(req.MealType),
		Ingredients: toDomainIngredients(req.Ingredients),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// DeleteRecipe handles DELETE /recipes/:id.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRecipe(c.Request.Context(), recipeID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError maps domain error kinds onto response codes. Unknown failures
// are logged with their full chain but reported generically, so raw store
// error text never reaches a client.
func (h *RecipeHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	h.logger.Error("recipe request failed",
		zap.String("path", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func recipeIDParam(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, false
	}
	return int32(id), true
}
