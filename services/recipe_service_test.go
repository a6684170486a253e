package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRecipeService(handler http.HandlerFunc) (*RecipeService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &RecipeService{
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}, srv
}

func TestRecipeSearchParsesMeals(t *testing.T) {
	svc, srv := testRecipeService(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.php" {
			t.Errorf("path = %q, want /search.php", r.URL.Path)
		}
		if q := r.URL.Query().Get("s"); q != "chicken soup" {
			t.Errorf("query s = %q, want %q", q, "chicken soup")
		}
		fmt.Fprint(w, `{"meals":[{
			"idMeal":"52940","strMeal":"Brown Stew Chicken",
			"strCategory":"Chicken","strArea":"Jamaican",
			"strInstructions":"Squeeze lime over chicken...",
			"strMealThumb":"https://example.com/thumb.jpg",
			"strIngredient1":"Chicken","strMeasure1":"1 whole",
			"strIngredient2":"Tomato","strMeasure2":"1 chopped",
			"strIngredient3":"","strMeasure3":""
		}]}`)
	})
	defer srv.Close()

	recipes, err := svc.Search("chicken soup")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("recipes = %d, want 1", len(recipes))
	}

	r := recipes[0]
	if r.ID != "52940" || r.Name != "Brown Stew Chicken" || r.Category != "Chicken" {
		t.Errorf("unexpected recipe header: %+v", r)
	}
	want := []string{"1 whole Chicken", "1 chopped Tomato"}
	if len(r.Ingredients) != len(want) {
		t.Fatalf("ingredients = %v, want %v", r.Ingredients, want)
	}
	for i := range want {
		if r.Ingredients[i] != want[i] {
			t.Errorf("ingredient[%d] = %q, want %q", i, r.Ingredients[i], want[i])
		}
	}
}

func TestRecipeIngredientWithoutMeasure(t *testing.T) {
	svc, srv := testRecipeService(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":[{
			"idMeal":"1","strMeal":"Toast",
			"strIngredient1":"Salt","strMeasure1":"  "
		}]}`)
	})
	defer srv.Close()

	recipes, err := svc.Search("toast")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := recipes[0].Ingredients[0]; got != "Salt" {
		t.Errorf("ingredient = %q, want bare %q", got, "Salt")
	}
}

func TestRecipeLookupNotFound(t *testing.T) {
	svc, srv := testRecipeService(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":null}`)
	})
	defer srv.Close()

	if _, err := svc.Lookup("00000"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRecipeByCategoryFetchesDetails(t *testing.T) {
	var lookups int
	svc, srv := testRecipeService(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filter.php":
			fmt.Fprint(w, `{"meals":[{"idMeal":"10"},{"idMeal":"11"}]}`)
		case "/lookup.php":
			lookups++
			id := r.URL.Query().Get("i")
			fmt.Fprintf(w, `{"meals":[{"idMeal":%q,"strMeal":"Meal %s"}]}`, id, id)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})
	defer srv.Close()

	recipes, err := svc.ByCategory("Chicken")
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	if len(recipes) != 2 || lookups != 2 {
		t.Fatalf("recipes=%d lookups=%d, want 2/2", len(recipes), lookups)
	}
	if recipes[0].Name != "Meal 10" {
		t.Errorf("first recipe = %+v", recipes[0])
	}
}

func TestRecipeAPIErrorSurfaces(t *testing.T) {
	svc, srv := testRecipeService(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer srv.Close()

	if _, err := svc.Search("x"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
