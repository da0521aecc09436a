package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

const maxNoteTitle = 200

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

func NewNotesService(repo *repository.NotesRepo) *NotesService {
	return &NotesService{NotesRepo: repo}
}

func (svc *NotesService) GetUserNotes(ctx context.Context, userID string, includeArchived bool) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID, includeArchived)
}

func (svc *NotesService) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	if query == "" {
		return svc.NotesRepo.GetUserNotes(ctx, userID, false)
	}
	return svc.NotesRepo.SearchNotes(ctx, userID, query)
}

func (svc *NotesService) CreateNote(ctx context.Context, note *model.Note) error {
	if note.UserID == "" {
		return errors.New("user ID is required")
	}
	if note.Title == "" {
		return errors.New("note title is required")
	}
	if len(note.Title) > maxNoteTitle {
		return errors.New("note title exceeds maximum length")
	}

	if note.NoteID == "" {
		note.NoteID = utils.GenerateID()
	}
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	return svc.NotesRepo.CreateNote(ctx, note)
}

func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error {
	if updates.Title == "" {
		return errors.New("note title is required")
	}
	updates.UpdatedAt = time.Now()
	return svc.NotesRepo.UpdateNote(ctx, noteID, userID, updates)
}

func (svc *NotesService) TogglePin(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	note.IsPinned = !note.IsPinned
	note.UpdatedAt = time.Now()
	if err := svc.NotesRepo.SetPinned(ctx, noteID, userID, note.IsPinned); err != nil {
		return nil, err
	}
	return note, nil
}

func (svc *NotesService) ArchiveNote(ctx context.Context, noteID, userID string, archived bool) error {
	return svc.NotesRepo.SetArchived(ctx, noteID, userID, archived)
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	return svc.NotesRepo.DeleteNote(ctx, noteID, userID)
}
