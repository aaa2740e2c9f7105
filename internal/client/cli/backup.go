package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/wpsaas/wpcloud/internal/provision"
)

// Backup asks the backend for a presigned upload URL for the current site.
// The actual archive transfer happens out of band, straight to object
// storage.
func (a *App) Backup(ctx context.Context) error {
	rec := a.sessions.Server()
	if rec.Domain == "" || rec.Status == provision.StatusNone {
		log.Printf("No provisioned site to back up")
		return nil
	}

	p, err := a.apiClient.BackupUploadURL(ctx, rec.Domain)
	if err != nil {
		log.Printf("Error requesting upload URL: %s", err.Error())
		return nil
	}

	fmt.Println("Upload your archive with:")
	fmt.Printf("  curl -X PUT --upload-file site.tar.gz '%s'\n", p.URL)
	fmt.Printf("Backup key: %s\n", p.Key)
	return nil
}

// Restore asks for a presigned download URL for a previously stored backup.
func (a *App) Restore(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter backup key", os.Stdout)
	if err != nil {
		return err
	}
	if key == "" {
		log.Printf("Backup key is required")
		return nil
	}

	p, err := a.apiClient.BackupDownloadURL(ctx, key)
	if err != nil {
		log.Printf("Error requesting download URL: %s", err.Error())
		return nil
	}

	fmt.Println("Download your archive with:")
	fmt.Printf("  curl -o site.tar.gz '%s'\n", p.URL)
	return nil
}
