// Command shopping-list prints a scaled shopping list for the recipes in a
// catalog file.
//
//	shopping-list --recipes configs/catalog.yaml --guests 50 [--menu-item id ...] [--out list.txt]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/domain"
	"github.com/osse101/CateringPlanner_Go/internal/shopping"
)

var errNoRecipes = errors.New("no recipes matched")

type options struct {
	recipesPath string
	guests      int
	menuItems   []string
	out         string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("shopping-list", pflag.ContinueOnError)
	fs.StringVarP(&opts.recipesPath, "recipes", "r", "", "catalog file with recipes (JSON or YAML)")
	fs.IntVarP(&opts.guests, "guests", "g", 100, "number of guests to scale to")
	fs.StringSliceVarP(&opts.menuItems, "menu-item", "m", nil, "only include recipes of these menu items (repeatable)")
	fs.StringVarP(&opts.out, "out", "o", "", "write the list to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.recipesPath == "" {
		return nil, fmt.Errorf("--recipes is required")
	}
	if opts.guests < 1 {
		return nil, fmt.Errorf("--guests must be at least 1, got %d", opts.guests)
	}
	return opts, nil
}

func run(args []string, stdout io.Writer, now shopping.Clock) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	loader := catalog.NewLoader(nil, nil)
	cfg, err := loader.Load(opts.recipesPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	recipes := selectRecipes(cfg.Recipes, opts.menuItems)
	if len(recipes) == 0 {
		return errNoRecipes
	}

	content := shopping.NewFormatter(now).Generate(recipes, float64(opts.guests))

	if opts.out == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	fmt.Fprintf(stdout, "Wrote %d recipes for %d guests to %s\n", len(recipes), opts.guests, opts.out)
	return nil
}

// selectRecipes keeps file order; an empty filter keeps everything
func selectRecipes(recipes []domain.Recipe, menuItems []string) []domain.Recipe {
	if len(menuItems) == 0 {
		return recipes
	}
	var out []domain.Recipe
	for _, r := range recipes {
		if slices.Contains(menuItems, r.MenuItemID) {
			out = append(out, r)
		}
	}
	return out
}
