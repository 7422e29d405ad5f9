package aggregate

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/socampo/folio-core/internal/models"
	"github.com/socampo/folio-core/internal/modules/content/seed"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.ProjectModel{}, &models.PublicationModel{}, &models.SkillModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMergeProjectsOrderAndFlags(t *testing.T) {
	dynamic := []models.ProjectModel{
		{Base: models.Base{ID: "dyn-1"}, TitleEn: "New Tool", Technologies: "Python, Go"},
	}
	static := []models.ProjectModel{
		{Base: models.Base{ID: "static-1"}, TitleEn: "Old Tool"},
	}

	got := MergeProjects(dynamic, static)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged projects, got %d", len(got))
	}
	if got[0].ID != "dyn-1" || !got[0].IsDynamic || !got[0].IsEditable {
		t.Errorf("dynamic record should come first and be editable: %+v", got[0])
	}
	if got[1].ID != "static-1" || got[1].IsDynamic || got[1].IsEditable {
		t.Errorf("static record should come last and be read-only: %+v", got[1])
	}

	want := []string{"Python", "Go"}
	if len(got[0].Technologies) != len(want) {
		t.Fatalf("technologies = %v, want %v", got[0].Technologies, want)
	}
	for i, tech := range want {
		if got[0].Technologies[i] != tech {
			t.Errorf("technologies[%d] = %q, want %q", i, got[0].Technologies[i], tech)
		}
	}
}

func TestMergeNeverNullSequences(t *testing.T) {
	got := MergeProjects([]models.ProjectModel{{Base: models.Base{ID: "p"}}}, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 project, got %d", len(got))
	}
	v := got[0]
	for name, list := range map[string][]string{
		"technologies": v.Technologies,
		"tags_en":      v.TagsEn,
		"tags_es":      v.TagsEs,
		"media_images": v.MediaImages,
		"media_videos": v.MediaVideos,
	} {
		if list == nil {
			t.Errorf("%s must be an empty sequence, not null", name)
		}
	}
}

func TestServiceBuildIncludesSeeds(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	p := &models.ProjectModel{TitleEn: "Dynamic", TitleEs: "Dinámico"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	payload, err := svc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantProjects := 1 + len(seed.Projects())
	if len(payload.Projects) != wantProjects {
		t.Fatalf("expected %d projects, got %d", wantProjects, len(payload.Projects))
	}
	if payload.Projects[0].ID != p.ID {
		t.Errorf("dynamic project should precede seeds, got first id %q", payload.Projects[0].ID)
	}
	for _, view := range payload.Projects[1:] {
		if view.IsDynamic || view.IsEditable {
			t.Errorf("seed project %q must be read-only", view.ID)
		}
	}

	if len(payload.Publications) != len(seed.Publications()) {
		t.Errorf("expected %d publications, got %d", len(seed.Publications()), len(payload.Publications))
	}
	if len(payload.Skills) != len(seed.Skills()) {
		t.Errorf("expected %d skills, got %d", len(seed.Skills()), len(payload.Skills))
	}
}
