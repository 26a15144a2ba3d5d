// Package parser reads a menu spreadsheet into import rows. Expected layout,
// one sheet, header row first:
//
//	category row: name EN | name AR | (price empty)
//	item row:     name EN | name AR | price | desc EN | desc AR | image URL | available
//
// Items belong to the most recent category row above them.
package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/restomenu/restomenu/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type ImportedCategory struct {
	Name  domain.LocalizedText
	Items []ImportedItem
}

type ImportedItem struct {
	Name        domain.LocalizedText
	Description domain.LocalizedText
	Price       float64
	ImageURL    string
	Available   bool
}

type SheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*SheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsParser{
		service: service,
	}, nil
}

func (p *SheetsParser) ParseMenu(ctx context.Context, spreadsheetID string) ([]ImportedCategory, error) {
	readRange := "A:G"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	return MapRows(resp.Values)
}

// MapRows turns raw sheet values into categories with their items. Split out
// of ParseMenu so the mapping is testable without a Sheets client.
func MapRows(rows [][]interface{}) ([]ImportedCategory, error) {
	var categories []ImportedCategory
	var current *ImportedCategory

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		nameEn := cell(row, 0)
		nameAr := cell(row, 1)
		priceStr := cell(row, 2)

		if nameEn == "" && nameAr == "" {
			continue
		}

		// a row without a price is a category header
		if priceStr == "" {
			if current != nil {
				categories = append(categories, *current)
			}
			current = &ImportedCategory{
				Name: domain.LocalizedText{EN: nameEn, AR: nameAr},
			}
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+1, priceStr)
		}

		if current == nil {
			// items above the first category header land in an implicit one
			current = &ImportedCategory{
				Name: domain.LocalizedText{EN: "Menu", AR: "القائمة"},
			}
		}

		item := ImportedItem{
			Name:        domain.LocalizedText{EN: nameEn, AR: nameAr},
			Description: domain.LocalizedText{EN: cell(row, 3), AR: cell(row, 4)},
			Price:       price,
			ImageURL:    cell(row, 5),
			Available:   true,
		}
		if avail := cell(row, 6); avail != "" {
			item.Available = strings.EqualFold(avail, "TRUE")
		}

		current.Items = append(current.Items, item)
	}

	if current != nil {
		categories = append(categories, *current)
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("spreadsheet has no category or item rows")
	}

	return categories, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}
