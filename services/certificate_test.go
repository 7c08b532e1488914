package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificate(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	employee := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completedAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	completeModule(t, db, employee.ID, module.ID, completedAt, 92)

	cert, err := NewCertificates(db).Issue(employee.ID, module.ID)
	require.NoError(t, err)

	expectedID := fmt.Sprintf("CERT-%d-%d-20260315", employee.ID, module.ID)
	assert.Equal(t, expectedID, cert.CertificateID)
	assert.Equal(t, "Ana", cert.EmployeeName)
	assert.Equal(t, "Phishing 101", cert.ModuleTitle)
	assert.Equal(t, 92, cert.Score)
	assert.True(t, cert.CompletedAt.Equal(completedAt))
}

func TestIssueCertificateIsDeterministic(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	employee := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	completeModule(t, db, employee.ID, module.ID, time.Now().UTC(), 80)

	issuer := NewCertificates(db)
	first, err := issuer.Issue(employee.ID, module.ID)
	require.NoError(t, err)
	second, err := issuer.Issue(employee.ID, module.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	employee := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	module := createModule(t, db, "Phishing 101", standardQuestions(), 70)

	ledger := NewProgressLedger(db)
	_, _, err := ledger.SubmitQuiz(employee.ID, module.ID, map[string]interface{}{"1": float64(0)})
	require.NoError(t, err)

	_, err = NewCertificates(db).Issue(employee.ID, module.ID)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestIssueCertificateUnknownRecord(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewCertificates(db).Issue(1, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCertificates(t *testing.T) {
	db := setupTestDB(t)
	company := createCompany(t, db, "acme")
	employee := createEmployee(t, db, company.ID, "Ana", "ana@acme.test")
	m1 := createModule(t, db, "Phishing 101", standardQuestions(), 70)
	m2 := createModule(t, db, "Passwords", standardQuestions(), 70)
	m3 := createModule(t, db, "Social Engineering", standardQuestions(), 70)

	completeModule(t, db, employee.ID, m1.ID, time.Now().UTC().Add(-48*time.Hour), 88)
	completeModule(t, db, employee.ID, m2.ID, time.Now().UTC(), 95)

	ledger := NewProgressLedger(db)
	_, err := ledger.Assign([]uint{employee.ID}, []uint{m3.ID})
	require.NoError(t, err)

	certs, err := NewCertificates(db).List(employee.ID)
	require.NoError(t, err)
	require.Len(t, certs, 2)

	// Most recent completion first
	assert.Equal(t, "Passwords", certs[0].ModuleTitle)
	assert.Equal(t, "Phishing 101", certs[1].ModuleTitle)
}
