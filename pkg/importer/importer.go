// Package importer loads administrator-authored reference content
// (crops, stages, problems, advisories, remedy components) from workbook,
// CSV or HTML exports into the catalog tables.
package importer

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type Importer struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) *Importer {
	return &Importer{db: db, log: baseLog.With("component", "importer")}
}

// Report counts upserted rows per table.
type Report struct {
	Rows    map[string]int
	Skipped []string
}

func (rep Report) Total() int {
	n := 0
	for _, c := range rep.Rows {
		n += c
	}
	return n
}

// Import upserts every recognised sheet by primary key inside one
// transaction; any bad row rolls the whole import back.
func (im *Importer) Import(ctx context.Context, sheets []Sheet) (Report, error) {
	rep := Report{Rows: map[string]int{}}
	byTable := map[string][]Sheet{}
	for _, sh := range sheets {
		t, ok := lookup(sh.Name)
		if !ok {
			im.log.Warn("skipping unknown sheet", "sheet", sh.Name)
			rep.Skipped = append(rep.Skipped, sh.Name)
			continue
		}
		byTable[t.name] = append(byTable[t.name], sh)
	}

	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			for _, sh := range byTable[t.name] {
				n, err := upsertSheet(tx, t, sh)
				if err != nil {
					return err
				}
				rep.Rows[t.name] += n
			}
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	im.log.Info("import finished", "rows", rep.Total(), "tables", len(rep.Rows), "skipped", len(rep.Skipped))
	return rep, nil
}

func upsertSheet(tx *gorm.DB, t table, sh Sheet) (int, error) {
	const op = "importer.Import"
	hdr := headerIndex(sh.Header)
	n := 0
	for i, rec := range sh.Rows {
		r := &row{header: hdr, rec: rec}
		if r.blank() {
			continue
		}
		v := t.build(r)
		// header is line 1
		if r.err != nil {
			return n, apperr.Invalidf(op, "%s line %d: %v", sh.Name, i+2, r.err)
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(v).Error; err != nil {
			return n, apperr.Unavailable(op, fmt.Errorf("%s line %d: %w", sh.Name, i+2, err))
		}
		n++
	}
	return n, nil
}
