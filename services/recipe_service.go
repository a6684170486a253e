package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RecipeService is a thin client over TheMealDB's free JSON API.
type RecipeService struct {
	baseURL string
	client  *http.Client
}

func NewRecipeService() *RecipeService {
	return &RecipeService{
		baseURL: "https://www.themealdb.com/api/json/v1/1",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Recipe is the flattened, presentation-ready form of a TheMealDB meal.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	ThumbURL     string   `json:"thumb_url"`
	YoutubeURL   string   `json:"youtube_url,omitempty"`
	Ingredients  []string `json:"ingredients"`
}

// mealDB meals carry ingredients as twenty numbered string pairs
// (strIngredient1/strMeasure1 ...), so decode into a raw map first.
type mealDBResponse struct {
	Meals []map[string]any `json:"meals"`
}

func (s *RecipeService) get(path string) (*mealDBResponse, error) {
	resp, err := s.client.Get(s.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to call TheMealDB: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TheMealDB response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("themealdb API error %d: %s", resp.StatusCode, string(body))
	}

	var out mealDBResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse TheMealDB JSON: %w", err)
	}
	return &out, nil
}

func str(m map[string]any, k string) string {
	v, _ := m[k].(string)
	return v
}

// parseRecipe flattens one raw meal, collecting the numbered
// ingredient/measure pairs into a single list.
func parseRecipe(m map[string]any) Recipe {
	r := Recipe{
		ID:           str(m, "idMeal"),
		Name:         str(m, "strMeal"),
		Category:     str(m, "strCategory"),
		Area:         str(m, "strArea"),
		Instructions: str(m, "strInstructions"),
		ThumbURL:     str(m, "strMealThumb"),
		YoutubeURL:   str(m, "strYoutube"),
	}
	for i := 1; i <= 20; i++ {
		ing := strings.TrimSpace(str(m, fmt.Sprintf("strIngredient%d", i)))
		if ing == "" {
			continue
		}
		measure := strings.TrimSpace(str(m, fmt.Sprintf("strMeasure%d", i)))
		if measure != "" {
			r.Ingredients = append(r.Ingredients, measure+" "+ing)
		} else {
			r.Ingredients = append(r.Ingredients, ing)
		}
	}
	return r
}

// Search looks recipes up by name.
func (s *RecipeService) Search(query string) ([]Recipe, error) {
	out, err := s.get("/search.php?s=" + url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	recipes := make([]Recipe, 0, len(out.Meals))
	for _, m := range out.Meals {
		recipes = append(recipes, parseRecipe(m))
	}
	return recipes, nil
}

// Lookup fetches one recipe by id.
func (s *RecipeService) Lookup(id string) (*Recipe, error) {
	out, err := s.get("/lookup.php?i=" + url.QueryEscape(id))
	if err != nil {
		return nil, err
	}
	if len(out.Meals) == 0 {
		return nil, fmt.Errorf("recipe %s not found", id)
	}
	r := parseRecipe(out.Meals[0])
	return &r, nil
}

// ByCategory filters by category. The filter endpoint only returns stubs
// (id, name, thumb), so each hit is re-fetched for full details, capped at
// 20 to keep the fan-out bounded.
func (s *RecipeService) ByCategory(category string) ([]Recipe, error) {
	out, err := s.get("/filter.php?c=" + url.QueryEscape(category))
	if err != nil {
		return nil, err
	}

	stubs := out.Meals
	if len(stubs) > 20 {
		stubs = stubs[:20]
	}

	recipes := make([]Recipe, 0, len(stubs))
	for _, m := range stubs {
		full, err := s.Lookup(str(m, "idMeal"))
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *full)
	}
	return recipes, nil
}
