// ABOUTME: Shopping list aggregation over the current plan's food items.
// ABOUTME: Case-insensitive dedupe keeping first-seen; grouped by category.
package metrics

import (
	"strings"

	"github.com/KarenBrasil/vida-fit/internal/models"
)

// DefaultCategory groups items that carry no category of their own.
const DefaultCategory = "Outros"

// ShoppingGroup is one category section of the market list.
type ShoppingGroup struct {
	Category string
	Items    []models.FoodItem
}

// ShoppingList unions the food items of every meal in the current plan
// (daily logs are not consulted) with user-added custom items, dropping
// case-insensitive duplicate names and keeping the first-seen entry.
// Groups preserve encounter order, as do items within a group. The
// free-text amounts are never recomputed; callers render any duration
// multiplier themselves.
func ShoppingList(plan *models.NutritionPlan, custom []models.FoodItem) []ShoppingGroup {
	var items []models.FoodItem
	seen := map[string]bool{}

	add := func(item models.FoodItem) {
		key := strings.ToLower(item.Name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		items = append(items, item)
	}

	if plan != nil {
		for _, meal := range plan.Meals {
			for _, item := range meal.FoodItems {
				add(item)
			}
		}
	}
	for _, item := range custom {
		add(item)
	}

	var groups []ShoppingGroup
	index := map[string]int{}
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = DefaultCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, ShoppingGroup{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// FilterShopping keeps only the named (checked) items of each group,
// dropping groups left empty. Name match is case-insensitive. An empty
// selection keeps everything.
func FilterShopping(groups []ShoppingGroup, names []string) []ShoppingGroup {
	if len(names) == 0 {
		return groups
	}
	want := map[string]bool{}
	for _, n := range names {
		want[strings.ToLower(n)] = true
	}
	var out []ShoppingGroup
	for _, g := range groups {
		var kept []models.FoodItem
		for _, item := range g.Items {
			if want[strings.ToLower(item.Name)] {
				kept = append(kept, item)
			}
		}
		if len(kept) > 0 {
			out = append(out, ShoppingGroup{Category: g.Category, Items: kept})
		}
	}
	return out
}
