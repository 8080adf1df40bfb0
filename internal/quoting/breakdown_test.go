package quoting

import (
	"testing"

	"github.com/diewo77/go-quotes/internal/models"
)

func breakdownQuote(websiteType string) *models.Quote {
	cart := models.Feature{ID: 5, Name: "Shopping Cart"}
	catalog := models.Feature{ID: 4, Name: "Product Catalog"}
	return &models.Quote{
		WebsiteType:      models.WebsiteType{Name: websiteType, Description: "Type description"},
		SelectedFeatures: []models.Feature{cart, catalog},
		Tasks: []models.QuoteTask{
			{TaskID: 30, Included: true, Task: models.Task{ID: 30, Name: "Product Listing UI", EstimatedHours: 4, IsDeliverable: true, Features: []models.Feature{catalog, cart}}},
			{TaskID: 1, Included: true, Task: models.Task{ID: 1, Name: "Deployment", Description: "Setting up and deploying to production", EstimatedHours: 1, IsRequired: true, IsDeliverable: true}},
			{TaskID: 31, Included: false, Task: models.Task{ID: 31, Name: "Product Detail Pages", EstimatedHours: 4, IsDeliverable: true, Features: []models.Feature{catalog}}},
			{TaskID: 32, Included: true, CustomHours: ptrFloat(9), Task: models.Task{ID: 32, Name: "Category Management", EstimatedHours: 3, Features: []models.Feature{catalog}}},
		},
	}
}

func TestTasksByFeature(t *testing.T) {
	groups := TasksByFeature(breakdownQuote(TypeEcommerce))
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Feature != CommonTasksGroup || len(groups[0].Tasks) != 1 || groups[0].Tasks[0].ID != 1 {
		t.Errorf("common group = %+v", groups[0])
	}
	if groups[1].Feature != "Product Catalog" || len(groups[1].Tasks) != 3 {
		t.Errorf("catalog group = %+v", groups[1])
	}
	if groups[2].Feature != "Shopping Cart" || len(groups[2].Tasks) != 1 || groups[2].Tasks[0].ID != 30 {
		t.Errorf("cart group = %+v", groups[2])
	}
	for _, line := range groups[1].Tasks {
		if line.ID == 32 && line.Hours != 9 {
			t.Errorf("custom hours not used: %+v", line)
		}
		if line.ID == 31 && line.Included {
			t.Errorf("excluded task shown as included: %+v", line)
		}
	}
}

func TestTasksByFeature_OmitsEmptyGroups(t *testing.T) {
	q := breakdownQuote(TypeCorporate)
	q.SelectedFeatures = append(q.SelectedFeatures, models.Feature{ID: 99, Name: "Analytics Integration"})
	q.Tasks = q.Tasks[1:2]
	groups := TasksByFeature(q)
	if len(groups) != 1 || groups[0].Feature != CommonTasksGroup {
		t.Errorf("groups = %+v", groups)
	}
}

func TestDeliverables(t *testing.T) {
	tests := []struct {
		websiteType string
		wantNames   []string
	}{
		{TypeEcommerce, []string{"Deployment", "Product Listing UI", TypeEcommerce, "Online Store"}},
		{TypeCorporate, []string{"Deployment", "Product Listing UI", TypeCorporate, "Business Website"}},
		{TypePortfolio, []string{"Deployment", "Product Listing UI", TypePortfolio}},
	}
	for _, tt := range tests {
		t.Run(tt.websiteType, func(t *testing.T) {
			got := Deliverables(breakdownQuote(tt.websiteType))
			if len(got) != len(tt.wantNames) {
				t.Fatalf("deliverables = %+v", got)
			}
			typeEntries := 0
			for i, d := range got {
				if d.Name != tt.wantNames[i] {
					t.Errorf("deliverable %d = %q, want %q", i, d.Name, tt.wantNames[i])
				}
				if d.Name == tt.websiteType {
					typeEntries++
				}
			}
			if typeEntries != 1 {
				t.Errorf("website type entries = %d, want 1", typeEntries)
			}
		})
	}
}

func TestFlattenTasks(t *testing.T) {
	lines := FlattenTasks(breakdownQuote(TypeEcommerce))
	// Product Listing UI is listed under both of its features.
	if len(lines) != 5 || lines[0].ID != 1 || lines[3].ID != 32 || lines[4].ID != 30 {
		t.Errorf("lines = %+v", lines)
	}
}
