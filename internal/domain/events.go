package domain

// MenuImportMessage is the queue message kicking off a spreadsheet import.
type MenuImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
	MenuID        string `json:"menu_id"`
}
