// Package drive persists chart artifacts to Google Drive.
//
// The store wraps the Drive v3 API behind the narrow contract the
// pipeline needs: given a local path and a remote name, upload the
// file into one named folder and return the remote identifier. Chart
// generation never depends on an upload succeeding.
package drive

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Store uploads local files into one named Drive folder.
type Store struct {
	svc    *drivev3.Service
	folder string
}

// NewStore builds a Drive store from service-account JSON credentials.
func NewStore(ctx context.Context, credentialsJSON []byte, folder string) (*Store, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, drivev3.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("parse drive credentials: %w", err)
	}
	svc, err := drivev3.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Store{svc: svc, folder: folder}, nil
}

// ensureFolder returns the ID of the configured folder, creating it
// when absent. Trashed folders are ignored rather than reused.
func (s *Store) ensureFolder(ctx context.Context) (string, error) {
	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", s.folder, folderMimeType)
	list, err := s.svc.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list drive folders: %w", err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	folder, err := s.svc.Files.Create(&drivev3.File{
		Name:     s.folder,
		MimeType: folderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create drive folder %s: %w", s.folder, err)
	}
	return folder.Id, nil
}

// Upload persists localPath under remoteName inside the store folder
// and returns the remote file ID. It fails when the local file is
// missing or the remote call is rejected.
func (s *Store) Upload(ctx context.Context, localPath, remoteName string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	folderID, err := s.ensureFolder(ctx)
	if err != nil {
		return "", err
	}

	meta := &drivev3.File{Name: remoteName, Parents: []string{folderID}}
	file, err := s.svc.Files.Create(meta).Media(f).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", remoteName, err)
	}
	return file.Id, nil
}
