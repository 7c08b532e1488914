package services

import (
	"sat/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyCompletionRate(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	ana := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	bob := createEmployee(t, db, company.ID, "Bob", "bob@acme.test")
	m1 := createModule(t, db, "Phishing 101", standardQuestions(), 70)
	m2 := createModule(t, db, "Passwords", standardQuestions(), 70)

	ledger := NewProgressLedger(db)
	_, err := ledger.Assign([]uint{ana.ID, bob.ID}, []uint{m1.ID, m2.ID})
	require.NoError(t, err)

	answers := map[string]interface{}{
		"1": float64(0), "2": float64(2), "3": true, "4": false,
	}
	_, _, err = ledger.SubmitQuiz(ana.ID, m1.ID, answers)
	require.NoError(t, err)

	// 1 of 4 records completed
	rate := NewReports(db).CompanyCompletionRate(company.ID)
	assert.InDelta(t, 25.0, rate, 0.01)
}

func TestCompanyCompletionRateEmptyPopulation(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")

	rate := NewReports(db).CompanyCompletionRate(company.ID)
	assert.Equal(t, 0.0, rate)
}

func TestCompanyCompletionRateScoping(t *testing.T) {
	db := setupTestDB(t)
	acme := createCompany(t, db, "acme")
	globex := createCompany(t, db, "globex")
	ana := createEmployee(t, db, acme.ID, "Ana", "ana@acme.test")
	gus := createEmployee(t, db, globex.ID, "Gus", "gus@globex.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completeModule(t, db, ana.ID, module.ID, time.Now().UTC(), 80)
	require.NoError(t, db.Create(&models.EmployeeProgress{
		EmployeeID: gus.ID, ModuleID: module.ID, Status: models.StatusNotStarted,
	}).Error)

	reports := NewReports(db)
	assert.InDelta(t, 100.0, reports.CompanyCompletionRate(acme.ID), 0.01)
	assert.InDelta(t, 0.0, reports.CompanyCompletionRate(globex.ID), 0.01)
}

func TestEmployeeProgressSummary(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	employee := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	m1 := createModule(t, db, "Phishing 101", standardQuestions(), 70)
	m2 := createModule(t, db, "Passwords", standardQuestions(), 70)
	m3 := createModule(t, db, "Social Engineering", standardQuestions(), 70)

	ledger := NewProgressLedger(db)
	_, err := ledger.Assign([]uint{employee.ID}, []uint{m1.ID, m2.ID, m3.ID})
	require.NoError(t, err)

	answers := map[string]interface{}{
		"1": float64(0), "2": float64(2), "3": true, "4": false,
	}
	_, _, err = ledger.SubmitQuiz(employee.ID, m1.ID, answers)
	require.NoError(t, err)

	summary := NewReports(db).EmployeeProgressSummary(employee.ID)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 3, summary.TotalAssigned)
	assert.Equal(t, 33, summary.Percent)
}

func TestEmployeeProgressSummaryNoAssignments(t *testing.T) {
	db := setupTestDB(t)

	summary := NewReports(db).EmployeeProgressSummary(42)
	assert.Equal(t, 0, summary.Percent)
	assert.Equal(t, 0, summary.TotalAssigned)
}

func TestModuleFunnelCompanyScoping(t *testing.T) {
	db := setupTestDB(t)
	acme := createCompany(t, db, "acme")
	globex := createCompany(t, db, "globex")
	ana := createEmployee(t, db, acme.ID, "Ana", "ana@acme.test")
	gus := createEmployee(t, db, globex.ID, "Gus", "gus@globex.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completeModule(t, db, ana.ID, module.ID, time.Now().UTC(), 85)
	require.NoError(t, db.Create(&models.EmployeeProgress{
		EmployeeID: gus.ID, ModuleID: module.ID, Status: models.StatusInProgress,
	}).Error)

	reports := NewReports(db)

	// Unscoped funnel sees both companies
	row := reports.ModuleFunnel(module.ID, nil)
	assert.Equal(t, "Phishing 101", row.Title)
	assert.Equal(t, 2, row.AssignedCount)
	assert.Equal(t, 1, row.CompletedCount)
	assert.InDelta(t, 50.0, row.CompletionRate, 0.01)

	// Scoped to acme only
	row = reports.ModuleFunnel(module.ID, &acme.ID)
	assert.Equal(t, 1, row.AssignedCount)
	assert.Equal(t, 1, row.CompletedCount)
	assert.InDelta(t, 100.0, row.CompletionRate, 0.01)
}

func TestModuleFunnelNoAssignments(t *testing.T) {
	db := setupTestDB(t)
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	row := NewReports(db).ModuleFunnel(module.ID, nil)
	assert.Equal(t, 0, row.AssignedCount)
	assert.Equal(t, 0.0, row.CompletionRate)
}

func TestTopPerformersExcludesUnassigned(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	ana := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	bob := createEmployee(t, db, company.ID, "Bob", "bob@acme.test")
	createEmployee(t, db, company.ID, "Cal", "cal@acme.test") // never assigned
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completeModule(t, db, ana.ID, module.ID, time.Now().UTC(), 95)
	require.NoError(t, db.Create(&models.EmployeeProgress{
		EmployeeID: bob.ID, ModuleID: module.ID, Status: models.StatusFailed,
	}).Error)

	// Ana completed everything assigned; Bob failed; Cal has no assignments
	// and does not count as a vacuous top performer
	assert.Equal(t, 1, NewReports(db).TopPerformers(company.ID))
}

func TestCompanyProgressReport(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	ana := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	createEmployee(t, db, company.ID, "Bob", "bob@acme.test") // unassigned
	m1 := createModule(t, db, "Phishing 101", standardQuestions(), 70)
	createModule(t, db, "Passwords", standardQuestions(), 70) // unassigned

	ledger := NewProgressLedger(db)
	answers := map[string]interface{}{
		"1": float64(0), "2": float64(2), "3": true, "4": false,
	}
	_, _, err := ledger.SubmitQuiz(ana.ID, m1.ID, answers)
	require.NoError(t, err)

	report := NewReports(db).CompanyProgressReport(company.ID)

	assert.InDelta(t, 100.0, report.OverallCompletionRate, 0.01)
	assert.Equal(t, 1, report.TopPerformers)

	// Only assigned modules and employees appear
	require.Len(t, report.ModuleProgress, 1)
	assert.Equal(t, m1.ID, report.ModuleProgress[0].ModuleID)
	require.Len(t, report.EmployeeProgress, 1)
	assert.Equal(t, ana.ID, report.EmployeeProgress[0].EmployeeID)
	assert.NotNil(t, report.EmployeeProgress[0].LastActivity)
}

func TestOverview(t *testing.T) {
	db := setupTestDB(t)
	acme := createCompany(t, db, "acme")
	globex := createCompany(t, db, "globex")
	ana := createEmployee(t, db, acme.ID, "Ana", "ana@acme.test")
	createEmployee(t, db, globex.ID, "Gus", "gus@globex.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completeModule(t, db, ana.ID, module.ID, time.Now().UTC(), 90)

	overview := NewReports(db).Overview()

	assert.Equal(t, 2, overview.TotalCompanies)
	assert.Equal(t, 2, overview.TotalEmployees)
	assert.Equal(t, 1, overview.TotalModules)
	assert.InDelta(t, 100.0, overview.OverallCompletionRate, 0.01)
	assert.Len(t, overview.Companies, 2)
}
