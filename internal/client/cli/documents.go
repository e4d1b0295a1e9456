package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/client/services"
	"github.com/young-sensey/dochub/internal/filex"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// printBanners shows the screen's transient notifications, if any.
func printBanners(out io.Writer, success, errMsg string) {
	if errMsg != "" {
		fmt.Fprintf(out, "[error] %s\n", errMsg)
	}
	if success != "" {
		fmt.Fprintf(out, "[ok] %s\n", success)
	}
}

// ShowDocuments mounts the document list screen, optionally filtered by a
// category id or the literal "null" for uncategorized documents.
func (a *App) ShowDocuments(ctx context.Context, categoryID string) error {
	path := "/"
	if categoryID != "" {
		path = "/category/" + categoryID
	}
	if !a.navigate(ctx, path) {
		return nil
	}

	ctrl := services.NewDocumentController(a.api, a.config.NotificationTTL)
	filter := client.ListFilter{CategoryID: categoryID}
	a.mu.Lock()
	a.docCtrl = ctrl
	a.docFilter = filter
	a.mu.Unlock()

	ctrl.Load(ctx, filter)
	a.renderDocuments(ctrl)
	return nil
}

func (a *App) renderDocuments(ctrl *services.Controller[models.Document, models.DocumentFields]) {
	success, errMsg := ctrl.Notice()
	printBanners(a.out, success, errMsg)

	items := ctrl.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No documents found.")
		return
	}
	for _, d := range items {
		line := fmt.Sprintf("[%d] %s — %s", d.ID, d.Title, d.Author)
		if d.CategoryID != nil {
			line += fmt.Sprintf(" (category %d)", *d.CategoryID)
		}
		if d.FilePath != "" {
			line += " (file)"
		}
		fmt.Fprintln(a.out, line)
	}
}

// ShowDocument mounts the document detail screen.
func (a *App) ShowDocument(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if !a.navigate(ctx, "/documents/"+rawID) {
		return nil
	}

	doc, err := a.api.GetDocument(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to load document: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, doc.Title)
	fmt.Fprintf(a.out, "Author: %s\n", doc.Author)
	fmt.Fprintln(a.out, doc.Content)
	if doc.FilePath != "" {
		fmt.Fprintf(a.out, "Attachment: %s (download %d to save)\n", client.DownloadName(doc.FilePath, doc.ID), doc.ID)
	}
	fmt.Fprintf(a.out, "Created: %s | Updated: %s\n", doc.CreatedAt.Local(), doc.UpdatedAt.Local())
	return nil
}

// NewDocument mounts the creation form. This is the only place a file can be
// attached; fields and file go to the server as one multipart submission.
func (a *App) NewDocument(ctx context.Context) error {
	if !a.navigate(ctx, "/documents/new") {
		return nil
	}

	fields, err := a.promptDocumentFields(models.DocumentFields{})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	var attachment *client.Attachment
	filePath, err := GetSimpleText(a.reader, "File to attach (path, empty for none)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			fmt.Fprintf(a.out, "[error] cannot read %s: %v\n", filePath, err)
			return err
		}
		defer f.Close()
		attachment = &client.Attachment{Name: filepath.Base(filePath), Data: f}
	}

	ctrl := services.NewDocumentController(a.api, a.config.NotificationTTL)
	defer ctrl.Close()

	if _, err := ctrl.Create(ctx, fields, attachment); err != nil {
		_, errMsg := ctrl.Notice()
		printBanners(a.out, "", errMsg)
		return err
	}

	fmt.Fprintln(a.out, "Document created.")
	return a.ShowDocuments(ctx, "")
}

// EditDocument mounts the edit form for one document. Blank input keeps the
// current value; the category accepts an id or "null" to uncategorize.
func (a *App) EditDocument(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if !a.navigate(ctx, "/documents/"+rawID+"/edit") {
		return nil
	}

	doc, err := a.api.GetDocument(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to load document: %v\n", err)
		return err
	}

	fields, err := a.promptDocumentFields(models.DocumentFields{
		Title:      doc.Title,
		Content:    doc.Content,
		Author:     doc.Author,
		CategoryID: doc.CategoryID,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ctrl := services.NewDocumentController(a.api, a.config.NotificationTTL)
	defer ctrl.Close()

	if _, err := ctrl.Update(ctx, id, fields); err != nil {
		_, errMsg := ctrl.Notice()
		printBanners(a.out, "", errMsg)
		return err
	}

	fmt.Fprintln(a.out, "Document updated.")
	return a.ShowDocuments(ctx, "")
}

// DeleteDocument removes a document from the currently mounted list, after
// confirmation. The list must be open: deletion updates it in place instead
// of refetching.
func (a *App) DeleteDocument(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.mu.Lock()
	ctrl := a.docCtrl
	a.mu.Unlock()
	if ctrl == nil {
		fmt.Fprintln(a.out, "Open the document list first (docs).")
		return nil
	}

	ctrl.Remove(ctx, id, func() bool {
		return Confirm(a.reader, "Delete this document?", a.out)
	})
	a.renderDocuments(ctrl)
	return nil
}

// Download fetches a document's attachment and saves it under downloads/.
// A failed download reports an error and leaves everything else alone.
func (a *App) Download(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	doc, err := a.api.GetDocument(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to load document: %v\n", err)
		return err
	}
	if doc.FilePath == "" {
		fmt.Fprintln(a.out, "This document has no attached file.")
		return nil
	}

	data, err := a.api.DownloadAttachment(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "[error] failed to download file: %v\n", err)
		return err
	}

	dir, err := filex.EnsureSubDir("downloads")
	if err != nil {
		fmt.Fprintf(a.out, "[error] %v\n", err)
		return err
	}
	target := filepath.Join(dir, client.DownloadName(doc.FilePath, doc.ID))
	if err := os.WriteFile(target, data, 0o640); err != nil {
		fmt.Fprintf(a.out, "[error] failed to save file: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Saved to %s\n", target)
	return nil
}

func (a *App) promptDocumentFields(current models.DocumentFields) (models.DocumentFields, error) {
	title, err := GetSimpleText(a.reader, labeled("Title", current.Title), a.out)
	if err != nil {
		return current, err
	}
	if title != "" {
		current.Title = title
	}

	content, err := GetSimpleText(a.reader, labeled("Content", current.Content), a.out)
	if err != nil {
		return current, err
	}
	if content != "" {
		current.Content = content
	}

	author, err := GetSimpleText(a.reader, labeled("Author", current.Author), a.out)
	if err != nil {
		return current, err
	}
	if author != "" {
		current.Author = author
	}

	category, err := GetSimpleText(a.reader, "Category id (empty to keep, 'null' for none)", a.out)
	if err != nil {
		return current, err
	}
	switch category {
	case "":
	case "null":
		current.CategoryID = nil
	default:
		id, err := parseID(category)
		if err != nil {
			return current, err
		}
		current.CategoryID = &id
	}

	return current, nil
}

func labeled(name, current string) string {
	if current == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, current)
}
