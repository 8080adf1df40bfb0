package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/go-quotes/internal/models"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type seedTask struct {
	Name, Description string
	Hours             float64
}

var seedWebsiteTypes = []models.WebsiteType{
	{Name: "Corporate Website", Description: "Professional website for businesses and organizations", BaseHours: 40},
	{Name: "E-commerce Website", Description: "Online store with product catalog and shopping cart", BaseHours: 80},
	{Name: "Landing Page", Description: "Single page website focused on conversion", BaseHours: 20},
	{Name: "Portfolio", Description: "Showcase your work and projects", BaseHours: 30},
	{Name: "Blog/Content Site", Description: "Content-focused website with regular updates", BaseHours: 35},
	{Name: "Custom Web App", Description: "Custom web application with specific functionality", BaseHours: 100},
}

var seedFeatures = []models.Feature{
	{Name: "Responsive Design", Description: "Website adapts to all screen sizes", EstimatedHours: 10,
		BusinessValue: "Reach more customers across all devices and improve user experience, leading to higher conversion rates"},
	{Name: "Content Management System", Description: "Easy content updates without coding", EstimatedHours: 15,
		BusinessValue: "Empower your team to update content without technical help, reducing maintenance costs"},
	{Name: "Contact Forms", Description: "Custom contact and inquiry forms", EstimatedHours: 5,
		BusinessValue: "Generate leads directly from your website by making it easy for prospects to reach you"},
	{Name: "Product Catalog", Description: "Organized product listings with categories", EstimatedHours: 20,
		BusinessValue: "Showcase your products professionally to drive more sales"},
	{Name: "Shopping Cart", Description: "Full shopping cart functionality", EstimatedHours: 25,
		BusinessValue: "Provide a seamless shopping experience that converts browsers into buyers"},
	{Name: "Payment Gateway", Description: "Secure payment processing", EstimatedHours: 15,
		BusinessValue: "Increase revenue by accepting payments securely 24/7"},
	{Name: "Blog Section", Description: "Full blog functionality with categories and tags", EstimatedHours: 10,
		BusinessValue: "Improve SEO ranking and establish thought leadership in your industry"},
	{Name: "Comments System", Description: "User comments and moderation", EstimatedHours: 8},
	{Name: "User Authentication", Description: "User registration and login system", EstimatedHours: 12,
		BusinessValue: "Create personalized experiences that increase customer engagement and loyalty"},
	{Name: "Analytics Integration", Description: "Track website performance and user behavior", EstimatedHours: 4,
		BusinessValue: "Make data-driven decisions by understanding how users interact with your site"},
}

// Features offered per website type.
var seedWebsiteTypeFeatures = map[string][]string{
	"Corporate Website":  {"Responsive Design", "Content Management System", "Contact Forms", "Blog Section", "Analytics Integration"},
	"E-commerce Website": {"Responsive Design", "Content Management System", "Product Catalog", "Shopping Cart", "Payment Gateway", "User Authentication", "Analytics Integration"},
	"Landing Page":       {"Responsive Design", "Contact Forms", "Analytics Integration"},
	"Portfolio":          {"Responsive Design", "Content Management System", "Contact Forms", "Analytics Integration"},
	"Blog/Content Site":  {"Responsive Design", "Content Management System", "Blog Section", "Comments System", "User Authentication", "Analytics Integration"},
	"Custom Web App":     {"Responsive Design", "Content Management System", "User Authentication", "Analytics Integration"},
}

// Required tasks that apply to every quote.
var seedCommonTasks = []seedTask{
	{"Requirement Analysis", "Analyzing and documenting requirements", 2},
	{"Design Planning", "Planning the design approach and structure", 3},
	{"Testing", "Quality assurance and testing", 2},
	{"Deployment", "Setting up and deploying to production", 1},
}

var seedFeatureTasks = map[string][]seedTask{
	"Responsive Design": {
		{"Mobile Layout Design", "Creating mobile-first layouts", 3},
		{"CSS Media Queries", "Implementing responsive CSS breakpoints", 2},
		{"Responsive Testing", "Testing on multiple devices and screen sizes", 2},
	},
	"Content Management System": {
		{"Admin Panel Setup", "Setting up the administrative interface", 4},
		{"Content Modeling", "Designing content types and relationships", 3},
		{"User Roles & Permissions", "Configuring access control for content editing", 3},
		{"Content Editor Interface", "Building the WYSIWYG editor and content forms", 5},
	},
	"User Authentication": {
		{"Login System", "Creating secure login functionality", 3},
		{"Registration Flow", "Building user registration process", 3},
		{"Password Reset", "Implementing password recovery functionality", 2},
		{"Profile Management", "User profile editing capabilities", 2},
		{"Session Management", "Handling user sessions securely", 2},
	},
	"Product Catalog": {
		{"Product Data Modeling", "Setting up product data structure", 3},
		{"Category Management", "Creating category hierarchy system", 3},
		{"Product Listing UI", "Building product list and grid views", 4},
		{"Product Detail Pages", "Designing and implementing product details", 4},
		{"Product Search & Filtering", "Creating search and filter functionality", 6},
	},
}

// Feature tasks are seeded in this order so ids are stable across runs.
var seedFeatureTaskOrder = []string{"Responsive Design", "Content Management System", "User Authentication", "Product Catalog"}

var seedDeliverables = map[string]bool{
	"Mobile Layout Design":     true,
	"Admin Panel Setup":        true,
	"Content Editor Interface": true,
	"Login System":             true,
	"Registration Flow":        true,
	"Product Listing UI":       true,
	"Product Detail Pages":     true,
	"Responsive Testing":       true,
	"Deployment":               true,
}

// Seed inserts the reference catalog. Existing rows (matched by name) are kept
// as they are, so running it again is a no-op.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		features := make(map[string]*models.Feature, len(seedFeatures))
		for _, f := range seedFeatures {
			row := f
			if err := firstOrCreate(tx, &row, f.Name); err != nil {
				return fmt.Errorf("seed feature %q: %w", f.Name, err)
			}
			features[f.Name] = &row
		}

		for _, wt := range seedWebsiteTypes {
			row := wt
			if err := firstOrCreate(tx, &row, wt.Name); err != nil {
				return fmt.Errorf("seed website type %q: %w", wt.Name, err)
			}
			var linked []models.Feature
			for _, name := range seedWebsiteTypeFeatures[wt.Name] {
				linked = append(linked, models.Feature{ID: features[name].ID})
			}
			if err := tx.Omit("Features.*").Model(&row).Association("Features").Append(linked); err != nil {
				return fmt.Errorf("link website type %q: %w", wt.Name, err)
			}
		}

		for _, st := range seedCommonTasks {
			if _, err := seedOneTask(tx, st, true); err != nil {
				return err
			}
		}
		for _, fname := range seedFeatureTaskOrder {
			var linked []models.Task
			for _, st := range seedFeatureTasks[fname] {
				task, err := seedOneTask(tx, st, false)
				if err != nil {
					return err
				}
				linked = append(linked, models.Task{ID: task.ID})
			}
			if err := tx.Omit("Tasks.*").Model(features[fname]).Association("Tasks").Append(linked); err != nil {
				return fmt.Errorf("link feature %q: %w", fname, err)
			}
		}
		zlog.Info().Int("website_types", len(seedWebsiteTypes)).Int("features", len(seedFeatures)).Msg("catalog seeded")
		return nil
	})
}

func seedOneTask(tx *gorm.DB, st seedTask, required bool) (*models.Task, error) {
	task := models.Task{
		Name:           st.Name,
		Description:    st.Description,
		EstimatedHours: st.Hours,
		IsRequired:     required,
		IsDeliverable:  seedDeliverables[st.Name],
	}
	if err := firstOrCreate(tx, &task, st.Name); err != nil {
		return nil, fmt.Errorf("seed task %q: %w", st.Name, err)
	}
	return &task, nil
}

// firstOrCreate loads the row with the given name into dst, creating it from dst when missing.
func firstOrCreate(tx *gorm.DB, dst any, name string) error {
	err := tx.Where("name = ?", name).First(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(dst).Error
	}
	return err
}
