package schema

import (
	"fmt"
	"reflect"
	"strings"

	"game-database/core/database"

	"gorm.io/gorm"
)

const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusMissing = "missing"
)

// Report is the result of a schema check.
type Report struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error", "missing"
}

// CheckSchema compares the live tables against Models. Inspection failures of a
// single table are recorded in the report rather than returned.
func CheckSchema(db *gorm.DB) (*Report, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &Report{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range Models() {
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", model)
		}
		tableName := tabler.TableName()

		tblReport, err := checkTable(db, tableName, reflect.TypeOf(model))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			tblReport.Status = StatusError
		}
		if tblReport.Status != StatusOK {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	return report, nil
}

func checkTable(db *gorm.DB, tableName string, model reflect.Type) (TableReport, error) {
	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         StatusOK,
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return tblReport, err
	}
	if len(actualCols) == 0 {
		tblReport.Status = StatusMissing
		return tblReport, nil
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		gormTag := model.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = StatusError
			continue
		}

		// Soft check: "int" accepts bigint(20) unsigned, "varchar" any length.
		expType := strings.ToLower(parseGormType(gormTag))
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			tblReport.TypeMismatches = append(tblReport.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			tblReport.Status = StatusError
		}
	}

	return tblReport, nil
}

func parseGormColumn(tag string) string {
	return parseGormTag(tag, "column:")
}

func parseGormType(tag string) string {
	return parseGormTag(tag, "type:")
}

func parseGormTag(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
