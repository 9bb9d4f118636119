package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

// CatalogListener is told whenever the catalog's size changes, so
// dependents (the upsell engine) can refresh. Notifications carry
// the fresh catalog and run on their own goroutine.
type CatalogListener interface {
	CatalogChanged(items []MenuItem)
}

type Service struct {
	repo     Repository
	storage  Storage
	listener CatalogListener
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// SetCatalogListener wires the suggestion refresh trigger. Wiring
// happens once in main, before the router starts serving.
func (s *Service) SetCatalogListener(l CatalogListener) {
	s.listener = l
}

func (s *Service) List(ctx context.Context) ([]MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Create (validated, triggers suggestion refresh)
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, in *MenuItemInput) (*MenuItem, error) {

	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	item := &MenuItem{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		IsPopular:       in.IsPopular,
		IsAvailable:     in.IsAvailable,
		PreparationTime: in.PreparationTime,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notifyCatalogChanged()

	return item, nil
}

// --------------------------------------------------
// Update (validated, same contract as create)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id string, in *MenuItemInput) (*MenuItem, error) {

	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.IsPopular = in.IsPopular
	item.IsAvailable = in.IsAvailable
	item.PreparationTime = in.PreparationTime

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifyCatalogChanged()
	return nil
}

func (s *Service) ToggleAvailability(ctx context.Context, id string) (*MenuItem, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.IsAvailable = !item.IsAvailable
	if err := s.repo.SetAvailability(ctx, id, item.IsAvailable); err != nil {
		return nil, err
	}

	return item, nil
}

// --------------------------------------------------
// Image upload (object storage, key becomes image_url)
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	id string,
	file multipart.File,
	filename string,
) (*MenuItem, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, errors.New("invalid file")
	}

	key := fmt.Sprintf("menu/%s/%s%s", id, uuid.New().String(), ext)

	publicURL, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return nil, err
	}

	item.ImageURL = publicURL
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) notifyCatalogChanged() {
	if s.listener == nil {
		return
	}

	go func() {
		items, err := s.repo.List(context.Background())
		if err != nil {
			return
		}
		s.listener.CatalogChanged(items)
	}()
}
