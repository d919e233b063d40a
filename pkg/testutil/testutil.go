// Package testutil provides an in-memory catalog database and fixture
// builders for package tests.
package testutil

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/villageboy09/kiosk/database"
	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/logger"
)

// DB opens a private in-memory SQLite database with every table migrated.
// The pool is pinned to one connection so all queries see the same memory db.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Close closes the underlying pool so later queries fail.
func Close(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("db handle: %v", err)
	}
	_ = sqlDB.Close()
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

func Str(s string) *string { return &s }
func Uint(n uint) *uint    { return &n }

func Scope(s entities.StageScope) *entities.StageScope { return &s }

// Fixture inserts catalog rows and fails the test on error.
type Fixture struct {
	tb testing.TB
	db *gorm.DB
}

func Seed(tb testing.TB, db *gorm.DB) *Fixture { return &Fixture{tb: tb, db: db} }

func (f *Fixture) create(v any) {
	f.tb.Helper()
	if err := f.db.Create(v).Error; err != nil {
		f.tb.Fatalf("seed %T: %v", v, err)
	}
}

func (f *Fixture) Crop(name, nameEn string) entities.Crop {
	f.tb.Helper()
	c := entities.Crop{Name: name, NameEn: Str(nameEn)}
	f.create(&c)
	return c
}

func (f *Fixture) Stage(cropID uint, name, nameEn string) entities.Stage {
	f.tb.Helper()
	s := entities.Stage{CropID: cropID, Name: name, NameEn: Str(nameEn), Description: Str(nameEn + " stage")}
	f.create(&s)
	return s
}

func (f *Fixture) Problem(cropID uint, category, nameTe, nameEn string) entities.Problem {
	f.tb.Helper()
	p := entities.Problem{CropID: cropID, Category: category, NameTe: Str(nameTe), NameEn: Str(nameEn)}
	f.create(&p)
	return p
}

// Link creates a problem_stages row. A zero id lets the database assign one.
func (f *Fixture) Link(id, problemID, stageID uint) entities.StageLink {
	f.tb.Helper()
	l := entities.StageLink{ID: id, ProblemID: problemID, StageID: stageID}
	f.create(&l)
	return l
}

func (f *Fixture) Advisory(problemID uint, titleTe, titleEn string) entities.Advisory {
	f.tb.Helper()
	a := entities.Advisory{
		ProblemID:  problemID,
		TitleTe:    Str(titleTe),
		TitleEn:    Str(titleEn),
		SymptomsTe: Str(titleTe + " లక్షణాలు"),
		SymptomsEn: Str(titleEn + " symptoms"),
	}
	f.create(&a)
	return a
}

// Component creates a remedy for advisoryID with the given link and scope.
func (f *Fixture) Component(advisoryID uint, link *uint, scope *entities.StageScope, typ, nameEn string) entities.Component {
	f.tb.Helper()
	c := entities.Component{
		AdvisoryID:    advisoryID,
		StageLinkID:   link,
		StageScope:    scope,
		ComponentType: typ,
		NameTe:        Str(nameEn + "-te"),
		NameEn:        Str(nameEn),
		DoseTe:        Str("2 మి.లీ/లీ"),
		DoseEn:        Str("2 ml/l"),
		MethodEn:      Str("foliar spray"),
	}
	f.create(&c)
	return c
}
