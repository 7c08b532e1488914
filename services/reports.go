package services

import (
	"math"
	"sat/models"
	"time"

	"gorm.io/gorm"
)

// Reports computes read-side rollups over the progress ledger. All ratios
// return 0 when the underlying population is empty.
type Reports struct {
	db *gorm.DB
}

// NewReports creates a report engine over the given database handle
func NewReports(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

// EmployeeSummary is one employee's completion rollup
type EmployeeSummary struct {
	CompletedCount int `json:"completed_modules"`
	TotalAssigned  int `json:"total_assigned"`
	Percent        int `json:"percent"`
}

// ModuleFunnelRow is assigned-vs-completed for one module
type ModuleFunnelRow struct {
	ModuleID       uint    `json:"module_id"`
	Title          string  `json:"title"`
	AssignedCount  int     `json:"assigned_count"`
	CompletedCount int     `json:"completed_count"`
	CompletionRate float64 `json:"completion_rate"`
}

// EmployeeReportRow is one employee's line in the company progress report
type EmployeeReportRow struct {
	EmployeeID       uint    `json:"employee_id"`
	Name             string  `json:"name"`
	AssignedModules  int     `json:"assigned_modules"`
	CompletedModules int     `json:"completed_modules"`
	CompletionRate   float64 `json:"completion_rate"`
	LastActivity     *string `json:"last_activity"`
}

// CompanyReport is the full company-admin progress report
type CompanyReport struct {
	OverallCompletionRate float64             `json:"overall_completion_rate"`
	TopPerformers         int                 `json:"top_performers"`
	ModuleProgress        []ModuleFunnelRow   `json:"module_progress"`
	EmployeeProgress      []EmployeeReportRow `json:"employee_progress"`
}

// CompanyOverviewRow is one company's line in the platform overview
type CompanyOverviewRow struct {
	CompanyID      uint    `json:"company_id"`
	Name           string  `json:"name"`
	EmployeeCount  int     `json:"employee_count"`
	CompletionRate float64 `json:"completion_rate"`
}

// PlatformOverview is the master admin rollup across all companies
type PlatformOverview struct {
	TotalCompanies        int                  `json:"total_companies"`
	TotalEmployees        int                  `json:"total_employees"`
	TotalModules          int                  `json:"total_modules"`
	OverallCompletionRate float64              `json:"overall_completion_rate"`
	Companies             []CompanyOverviewRow `json:"companies"`
}

// companyEmployeeIDs builds the subquery selecting a company's employee IDs
func (r *Reports) companyEmployeeIDs(companyID uint) *gorm.DB {
	return r.db.Model(&models.Employee{}).Select("id").
		Where("company_id = ? AND is_deleted = ?", companyID, false)
}

// CompanyCompletionRate returns completed/total percent across all progress
// records of a company's employees, rounded to one decimal
func (r *Reports) CompanyCompletionRate(companyID uint) float64 {
	var total, completed int64
	sub := r.companyEmployeeIDs(companyID)

	r.db.Model(&models.EmployeeProgress{}).Where("employee_id IN (?)", sub).Count(&total)
	if total == 0 {
		return 0
	}
	r.db.Model(&models.EmployeeProgress{}).
		Where("employee_id IN (?) AND status = ?", r.companyEmployeeIDs(companyID), models.StatusCompleted).
		Count(&completed)

	return round1(float64(completed) / float64(total) * 100)
}

// EmployeeProgressSummary returns one employee's completed/assigned rollup
func (r *Reports) EmployeeProgressSummary(employeeID uint) EmployeeSummary {
	var total, completed int64
	r.db.Model(&models.EmployeeProgress{}).Where("employee_id = ?", employeeID).Count(&total)
	r.db.Model(&models.EmployeeProgress{}).
		Where("employee_id = ? AND status = ?", employeeID, models.StatusCompleted).
		Count(&completed)

	summary := EmployeeSummary{
		CompletedCount: int(completed),
		TotalAssigned:  int(total),
	}
	if total > 0 {
		summary.Percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return summary
}

// ModuleFunnel returns assigned-vs-completed counts for one module, optionally
// scoped to one company's employees
func (r *Reports) ModuleFunnel(moduleID uint, companyID *uint) ModuleFunnelRow {
	var module models.TrainingModule
	r.db.Where("id = ?", moduleID).First(&module)

	scoped := func() *gorm.DB {
		q := r.db.Model(&models.EmployeeProgress{}).Where("module_id = ?", moduleID)
		if companyID != nil {
			q = q.Where("employee_id IN (?)", r.companyEmployeeIDs(*companyID))
		}
		return q
	}

	var assigned, completed int64
	scoped().Count(&assigned)
	scoped().Where("status = ?", models.StatusCompleted).Count(&completed)

	row := ModuleFunnelRow{
		ModuleID:       moduleID,
		Title:          module.Title,
		AssignedCount:  int(assigned),
		CompletedCount: int(completed),
	}
	if assigned > 0 {
		row.CompletionRate = round1(float64(completed) / float64(assigned) * 100)
	}
	return row
}

// TopPerformers counts employees of a company whose every assigned module is
// completed. Employees without any assignment do not count.
func (r *Reports) TopPerformers(companyID uint) int {
	var employees []models.Employee
	r.db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&employees)

	count := 0
	for _, employee := range employees {
		var assigned, completed int64
		r.db.Model(&models.EmployeeProgress{}).Where("employee_id = ?", employee.ID).Count(&assigned)
		if assigned == 0 {
			continue
		}
		r.db.Model(&models.EmployeeProgress{}).
			Where("employee_id = ? AND status = ?", employee.ID, models.StatusCompleted).
			Count(&completed)
		if completed == assigned {
			count++
		}
	}
	return count
}

// CompanyProgressReport assembles the full report a company admin sees
func (r *Reports) CompanyProgressReport(companyID uint) CompanyReport {
	report := CompanyReport{
		OverallCompletionRate: r.CompanyCompletionRate(companyID),
		TopPerformers:         r.TopPerformers(companyID),
		ModuleProgress:        []ModuleFunnelRow{},
		EmployeeProgress:      []EmployeeReportRow{},
	}

	var modules []models.TrainingModule
	r.db.Where("is_deleted = ?", false).Find(&modules)
	for _, module := range modules {
		row := r.ModuleFunnel(module.ID, &companyID)
		// Only include modules that have been assigned
		if row.AssignedCount > 0 {
			report.ModuleProgress = append(report.ModuleProgress, row)
		}
	}

	var employees []models.Employee
	r.db.Where("company_id = ? AND is_deleted = ?", companyID, false).Find(&employees)
	for _, employee := range employees {
		summary := r.EmployeeProgressSummary(employee.ID)
		if summary.TotalAssigned == 0 {
			continue
		}

		row := EmployeeReportRow{
			EmployeeID:       employee.ID,
			Name:             employee.Name,
			AssignedModules:  summary.TotalAssigned,
			CompletedModules: summary.CompletedCount,
		}
		row.CompletionRate = round1(float64(summary.CompletedCount) / float64(summary.TotalAssigned) * 100)

		var last models.EmployeeProgress
		err := r.db.Where("employee_id = ? AND started_at IS NOT NULL", employee.ID).
			Order("started_at desc").First(&last).Error
		if err == nil && last.StartedAt != nil {
			formatted := last.StartedAt.Format(time.RFC3339)
			row.LastActivity = &formatted
		}

		report.EmployeeProgress = append(report.EmployeeProgress, row)
	}

	return report
}

// Overview assembles the master admin platform rollup
func (r *Reports) Overview() PlatformOverview {
	overview := PlatformOverview{Companies: []CompanyOverviewRow{}}

	var companies []models.Company
	r.db.Where("is_deleted = ?", false).Find(&companies)
	overview.TotalCompanies = len(companies)

	var employees, modules int64
	r.db.Model(&models.Employee{}).Where("is_deleted = ?", false).Count(&employees)
	r.db.Model(&models.TrainingModule{}).Where("is_deleted = ?", false).Count(&modules)
	overview.TotalEmployees = int(employees)
	overview.TotalModules = int(modules)

	var total, completed int64
	r.db.Model(&models.EmployeeProgress{}).Count(&total)
	if total > 0 {
		r.db.Model(&models.EmployeeProgress{}).Where("status = ?", models.StatusCompleted).Count(&completed)
		overview.OverallCompletionRate = round1(float64(completed) / float64(total) * 100)
	}

	for _, company := range companies {
		var headcount int64
		r.db.Model(&models.Employee{}).Where("company_id = ? AND is_deleted = ?", company.ID, false).Count(&headcount)
		overview.Companies = append(overview.Companies, CompanyOverviewRow{
			CompanyID:      company.ID,
			Name:           company.Name,
			EmployeeCount:  int(headcount),
			CompletionRate: r.CompanyCompletionRate(company.ID),
		})
	}

	return overview
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
