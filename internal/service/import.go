package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/parser"
	"github.com/restomenu/restomenu/internal/queue"
	"github.com/restomenu/restomenu/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MenuParser is what the import pipeline needs from the sheets client.
type MenuParser interface {
	ParseMenu(ctx context.Context, spreadsheetID string) ([]parser.ImportedCategory, error)
}

// ImportService runs spreadsheet menu onboarding: a task document tracks
// progress in Mongo while the created categories and items go to the backend
// like any dashboard mutation would.
type ImportService struct {
	taskRepo   repo.ImportTaskRepository
	categories *adapter.Categories
	products   *adapter.Products
	parser     MenuParser
	broker     queue.Broker
	logger     *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.ImportTaskRepository,
	categories *adapter.Categories,
	products *adapter.Products,
	menuParser MenuParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo:   taskRepo,
		categories: categories,
		products:   products,
		parser:     menuParser,
		broker:     broker,
		logger:     logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID, menuID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.ImportQueued,
		SpreadsheetID: spreadsheetID,
		MenuID:        menuID,
		RetryCount:    0,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
		MenuID:        menuID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID, "menu_id", menuID)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask parses the sheet and creates each category and its items
// through the backend. The backend enforces plan limits; a rejected create
// fails the task with the backend's message.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, "spreadsheet import is not configured")
		return fmt.Errorf("spreadsheet import is not configured")
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex(), "menu_id", task.MenuID)

	imported, err := s.parser.ParseMenu(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse spreadsheet", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
		return fmt.Errorf("failed to parse spreadsheet: %w", err)
	}

	categoriesCreated := 0
	itemsCreated := 0

	for order, cat := range imported {
		created, err := s.categories.Create(ctx, task.MenuID, adapter.CategoryInput{
			NameEn:    cat.Name.EN,
			NameAr:    cat.Name.AR,
			SortOrder: order,
		})
		if err != nil {
			s.logger.Errorw("failed to create imported category", "task_id", taskID.Hex(), "error", err)
			_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
			return fmt.Errorf("failed to create imported category: %w", err)
		}
		categoriesCreated++

		for itemOrder, item := range cat.Items {
			available := item.Available
			if _, err := s.products.Create(ctx, task.MenuID, adapter.ProductInput{
				CategoryID:    created.ID,
				NameEn:        item.Name.EN,
				NameAr:        item.Name.AR,
				DescriptionEn: item.Description.EN,
				DescriptionAr: item.Description.AR,
				Price:         item.Price,
				ImageURL:      item.ImageURL,
				SortOrder:     itemOrder,
				Available:     &available,
			}); err != nil {
				s.logger.Errorw("failed to create imported item", "task_id", taskID.Hex(), "error", err)
				_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
				return fmt.Errorf("failed to create imported item: %w", err)
			}
			itemsCreated++
		}
	}

	if err := s.taskRepo.Complete(ctx, taskID, categoriesCreated, itemsCreated); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	s.logger.Infow("import task completed",
		"task_id", taskID.Hex(),
		"categories_created", categoriesCreated,
		"items_created", itemsCreated,
	)

	return nil
}
