package handler

import (
	"net/http"

	"pinkhub/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ViewResponse is a filtered and sorted slice of the catalog.
type ViewResponse struct {
	Filter catalog.FilterState  `json:"filter"`
	Total  int                  `json:"total"`
	Games  []catalog.GameRecord `json:"games"`
}

// CatalogHandler serves read-only views of the fixed catalog.
type CatalogHandler struct {
	engine *catalog.Engine
}

func NewCatalogHandler(engine *catalog.Engine) *CatalogHandler {
	return &CatalogHandler{engine: engine}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cat := rg.Group("/catalog")
	{
		cat.GET("", h.GetView)
		cat.GET("/genres", h.GetGenres)
		cat.GET("/platforms", h.GetPlatforms)
	}
}

// GetView godoc
// @Summary      Filter the catalog
// @Description  Evaluates a filter without a session. Missing parameters take the session defaults.
// @Tags         catalog
// @Produce      json
// @Param        q        query  string  false  "Case-insensitive title substring"
// @Param        genre    query  string  false  "Exact genre, Todos for all" default(Todos)
// @Param        platform query  string  false  "Exact platform, Todas for all" default(Todas)
// @Param        sort     query  string  false  "title, releaseYear or rating" default(rating)
// @Success      200  {object}  ViewResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetView(c *gin.Context) {
	def := catalog.DefaultFilter()
	key, err := catalog.ParseSortKey(c.DefaultQuery("sort", string(def.SortKey)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := catalog.FilterState{
		SearchTerm:       c.Query("q"),
		SelectedGenre:    c.DefaultQuery("genre", def.SelectedGenre),
		SelectedPlatform: c.DefaultQuery("platform", def.SelectedPlatform),
		SortKey:          key,
	}
	games := h.engine.View(filter)

	c.JSON(http.StatusOK, ViewResponse{Filter: filter, Total: len(games), Games: games})
}

// GetGenres godoc
// @Summary      List genres
// @Description  Distinct genres of the catalog in first-occurrence order.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /catalog/genres [get]
func (h *CatalogHandler) GetGenres(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Catalog().Genres())
}

// GetPlatforms godoc
// @Summary      List platforms
// @Description  Distinct platforms of the catalog in first-occurrence order.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /catalog/platforms [get]
func (h *CatalogHandler) GetPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Catalog().Platforms())
}
