package memory_test

import (
	"testing"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/memory"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/testutil"
)

func TestRepositoryContract(t *testing.T) {
	testutil.RunRepositoryContract(t, func(t *testing.T) testutil.Repositories {
		return testutil.Repositories{
			Companies:   memory.NewCompanyRepository(),
			Assessments: memory.NewAssessmentRepository(),
			Settings:    memory.NewSettingsRepository(),
		}
	})
}
