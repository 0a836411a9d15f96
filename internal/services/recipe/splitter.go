package recipe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/socialchef/pantry/internal/services/ai"
)

const (
	maxTitleSeedRunes = 50

	fallbackTitlePart1 = "AI Recipe Suggestions (Part 1)"
	fallbackTitlePart2 = "AI Recipe Suggestions (Part 2)"
)

// headingPattern matches "**Recipe N:" anywhere or "Recipe N:" at the start
// of a line that follows a newline. The number itself is not kept.
var headingPattern = regexp.MustCompile(`(?i)(?:\*\*Recipe \d+:|\nRecipe \d+:)`)

// SplitResult is the output of Split.
type SplitResult struct {
	Recipes  []Recipe
	Fallback bool
}

// Split partitions completion text on recipe headings. Titles are numbered by
// output position. Text without any heading, or whose partitions are all
// blank, is cut in half by rune count and returned as two fixed-title recipes.
func Split(content string, ingredients []string) SplitResult {
	joined := ai.JoinIngredients(ingredients)

	var recipes []Recipe
	for _, part := range partitions(content) {
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}

		seed, body, _ := strings.Cut(text, "\n")
		recipes = append(recipes, Recipe{
			Title:        fmt.Sprintf("Recipe %d: %s", len(recipes)+1, truncateRunes(seed, maxTitleSeedRunes)),
			Ingredients:  joined,
			Instructions: strings.TrimSpace(body),
		})
	}

	if len(recipes) > 0 {
		return SplitResult{Recipes: recipes}
	}

	first, second := halve(content)
	return SplitResult{
		Recipes: []Recipe{
			{Title: fallbackTitlePart1, Ingredients: joined, Instructions: first},
			{Title: fallbackTitlePart2, Ingredients: joined, Instructions: second},
		},
		Fallback: true,
	}
}

// partitions returns nil when content has no heading at all.
func partitions(content string) []string {
	if !headingPattern.MatchString(content) {
		return nil
	}
	return headingPattern.Split(content, -1)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func halve(s string) (string, string) {
	r := []rune(s)
	mid := len(r) / 2
	return string(r[:mid]), string(r[mid:])
}
