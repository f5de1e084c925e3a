package tests

import (
	"context"
	"testing"

	"github.com/rendyak/karirku/internal/entities"
	"github.com/rendyak/karirku/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func Test_CountByPosition_IgnoresRejectedApplicants(t *testing.T) {

	defer clearDb()

	applications := repositories.NewApplicationsRepository(dbCtx.DB)

	application := entities.NewApplication("user0001", 1, []string{"Web Developer"}, "")
	err := applications.Add(context.Background(), &application, map[string]int{"Web Developer": 5})
	assert.NoError(t, err)

	count, err := applications.CountByPosition(context.Background(), 1, "Web Developer")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	dbCtx.DB.Model(&entities.ApplicationPosition{}).
		Where("application_id = ?", application.ID).
		Update("apply_status", entities.ApplyRejected)

	count, err = applications.CountByPosition(context.Background(), 1, "Web Developer")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func Test_ApplicationAdd_CapacityCheckedInsideTransaction(t *testing.T) {

	defer clearDb()

	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	capacities := map[string]int{"UI/UX Designer": 2}

	for i, user := range []string{"user0001", "user0002"} {
		application := entities.NewApplication(user, 3, []string{"UI/UX Designer"}, "")
		err := applications.Add(context.Background(), &application, capacities)
		assert.NoError(t, err, "applicant %d should be admitted", i+1)
	}

	application := entities.NewApplication("user0003", 3, []string{"UI/UX Designer"}, "")
	err := applications.Add(context.Background(), &application, capacities)

	var full *entities.PositionFullError
	assert.ErrorAs(t, err, &full)

	var count int64
	dbCtx.DB.Model(&entities.Application{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func Test_ApplicationAdd_RepeatedPositionCountsAgainstCapacity(t *testing.T) {

	defer clearDb()

	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	capacities := map[string]int{"UI/UX Designer": 2}

	first := entities.NewApplication("user0001", 3, []string{"UI/UX Designer"}, "")
	err := applications.Add(context.Background(), &first, capacities)
	assert.NoError(t, err)

	// one slot left; a submission naming the position twice needs two
	second := entities.NewApplication("user0002", 3, []string{"UI/UX Designer", "UI/UX Designer"}, "")
	err = applications.Add(context.Background(), &second, capacities)

	var full *entities.PositionFullError
	assert.ErrorAs(t, err, &full)
	assert.Equal(t, "UI/UX Designer", full.Position)

	count, err := applications.CountByPosition(context.Background(), 3, "UI/UX Designer")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
