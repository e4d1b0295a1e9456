package cli

import (
	"context"
	"fmt"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/client/services"
)

// ShowCategories mounts the category list screen.
func (a *App) ShowCategories(ctx context.Context) error {
	if !a.navigate(ctx, "/categories") {
		return nil
	}

	ctrl := services.NewCategoryController(a.api, a.config.NotificationTTL)
	a.mu.Lock()
	a.catCtrl = ctrl
	a.mu.Unlock()

	ctrl.Load(ctx, client.ListFilter{})
	a.renderCategories(ctrl)
	return nil
}

func (a *App) renderCategories(ctrl *services.Controller[models.Category, models.CategoryFields]) {
	success, errMsg := ctrl.Notice()
	printBanners(a.out, success, errMsg)

	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No categories found.")
		return
	}
	for _, c := range items {
		line := fmt.Sprintf("[%d] %s", c.ID, c.Name)
		if c.Description != "" {
			line += " — " + c.Description
		}
		fmt.Fprintln(a.out, line)
	}
}

// ShowCategory mounts the category detail screen.
func (a *App) ShowCategory(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if !a.navigate(ctx, "/categories/"+rawID) {
		return nil
	}

	cat, err := a.api.GetCategory(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to load category: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, cat.Name)
	if cat.Description != "" {
		fmt.Fprintln(a.out, cat.Description)
	}
	fmt.Fprintf(a.out, "Created: %s | Updated: %s\n", cat.CreatedAt.Local(), cat.UpdatedAt.Local())
	return nil
}

func (a *App) NewCategory(ctx context.Context) error {
	if !a.navigate(ctx, "/categories/new") {
		return nil
	}

	fields, err := a.promptCategoryFields(models.CategoryFields{})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ctrl := services.NewCategoryController(a.api, a.config.NotificationTTL)
	defer ctrl.Close()

	if _, err := ctrl.Create(ctx, fields, nil); err != nil {
		_, errMsg := ctrl.Notice()
		printBanners(a.out, "", errMsg)
		return err
	}

	fmt.Fprintln(a.out, "Category created.")
	return a.ShowCategories(ctx)
}

func (a *App) EditCategory(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if !a.navigate(ctx, "/categories/"+rawID+"/edit") {
		return nil
	}

	cat, err := a.api.GetCategory(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to load category: %v\n", err)
		return err
	}

	fields, err := a.promptCategoryFields(models.CategoryFields{
		Name:        cat.Name,
		Description: cat.Description,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ctrl := services.NewCategoryController(a.api, a.config.NotificationTTL)
	defer ctrl.Close()

	if _, err := ctrl.Update(ctx, id, fields); err != nil {
		_, errMsg := ctrl.Notice()
		printBanners(a.out, "", errMsg)
		return err
	}

	fmt.Fprintln(a.out, "Category updated.")
	return a.ShowCategories(ctx)
}

// DeleteCategory removes a category from the currently mounted list, after
// confirmation. Documents in the deleted category keep their reference.
func (a *App) DeleteCategory(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.mu.Lock()
	ctrl := a.catCtrl
	a.mu.Unlock()
	if ctrl == nil {
		fmt.Fprintln(a.out, "Open the category list first (cats).")
		return nil
	}

	ctrl.Remove(ctx, id, func() bool {
		return Confirm(a.reader, "Delete this category?", a.out)
	})
	a.renderCategories(ctrl)
	return nil
}

func (a *App) promptCategoryFields(current models.CategoryFields) (models.CategoryFields, error) {
	name, err := GetSimpleText(a.reader, labeled("Name", current.Name), a.out)
	if err != nil {
		return current, err
	}
	if name != "" {
		current.Name = name
	}

	description, err := GetSimpleText(a.reader, labeled("Description", current.Description), a.out)
	if err != nil {
		return current, err
	}
	if description != "" {
		current.Description = description
	}

	return current, nil
}
