package handler

import (
	"errors"
	"net/http"
	"pinkhub/backend/internal/database"
	"pinkhub/backend/internal/models"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameInput is a full or partial game record. Only the title is required.
type GameInput struct {
	Title       string  `json:"title" binding:"required" example:"Stardew Valley"`
	Genre       string  `json:"genre" example:"Simulación"`
	Platform    string  `json:"platform" example:"Switch"`
	ReleaseYear int     `json:"releaseYear" example:"2016"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5" example:"4.7"`
	Cover       string  `json:"cover" example:"https://placehold.co/150x200"`
}

type GameResponse struct {
	ID          uint    `json:"id" example:"6"`
	Title       string  `json:"title" example:"Stardew Valley"`
	Genre       string  `json:"genre" example:"Simulación"`
	Platform    string  `json:"platform" example:"Switch"`
	ReleaseYear int     `json:"releaseYear" example:"2016"`
	Rating      float64 `json:"rating" example:"4.7"`
	Cover       string  `json:"cover" example:"https://placehold.co/150x200"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Genre:       game.Genre,
		Platform:    game.Platform,
		ReleaseYear: game.ReleaseYear,
		Rating:      game.Rating,
		Cover:       game.Cover,
	}
}

func (in GameInput) apply(game *models.Game) {
	game.Title = in.Title
	game.Genre = in.Genre
	game.Platform = in.Platform
	game.ReleaseYear = in.ReleaseYear
	game.Rating = in.Rating
	game.Cover = in.Cover
}

// endregion

// RegisterGameRoutes mounts the games collection under rg.
func RegisterGameRoutes(rg *gin.RouterGroup) {
	games := rg.Group("/games")
	{
		games.GET("", GetGames)
		games.POST("", CreateGame)
		games.PUT("/:id", UpdateGame)
		games.DELETE("/:id", DeleteGame)
	}
}

func parseGameID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// GetGames godoc
// @Summary      List games
// @Description  Returns the whole games collection ordered by id.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	var games []models.Game
	if err := database.DB.WithContext(c.Request.Context()).Order("id ASC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Stores a game and returns it with its assigned id.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	input.apply(&game)

	if err := database.DB.WithContext(c.Request.Context()).Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Replace a game
// @Description  Replaces every field of an existing game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      int        true  "Game ID"
// @Param        input body      GameInput  true  "Game"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}
	db := database.DB.WithContext(c.Request.Context())

	var game models.Game
	if err := db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.apply(&game)

	if err := db.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes a game. The response has no body.
// @Tags         games
// @Param        id path int true "Game ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	result := database.DB.WithContext(c.Request.Context()).Delete(&models.Game{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
