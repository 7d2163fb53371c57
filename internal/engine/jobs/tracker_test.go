package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := OpenTracker(context.Background(), "", t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestTrackerAddAndList(t *testing.T) {
	tr := openTestTracker(t)
	ctx := context.Background()

	res, err := tr.Add(ctx, JobTrackerAddInput{
		Title:    "Platform Engineer",
		Company:  "Initech",
		URL:      "https://example.com/jobs/1",
		Salary:   "$120,000",
		Location: "Berlin",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)

	list, err := tr.List(ctx, JobTrackerListInput{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	j := list.Jobs[0]
	assert.Equal(t, "Platform Engineer", j.Title)
	assert.Equal(t, "Initech", j.Company)
	assert.Equal(t, StatusSaved, j.Status)
	assert.NotEmpty(t, j.CreatedAt)
	assert.NotEmpty(t, j.UpdatedAt)
}

func TestTrackerAddValidation(t *testing.T) {
	tr := openTestTracker(t)
	ctx := context.Background()

	_, err := tr.Add(ctx, JobTrackerAddInput{Company: "Initech"})
	assert.Error(t, err, "missing title")

	_, err = tr.Add(ctx, JobTrackerAddInput{Title: "X", Status: "ghosted"})
	assert.Error(t, err, "invalid status")
}

func TestTrackerListFilter(t *testing.T) {
	tr := openTestTracker(t)
	ctx := context.Background()

	_, err := tr.Add(ctx, JobTrackerAddInput{Title: "A", Company: "X", Status: "saved"})
	require.NoError(t, err)
	_, err = tr.Add(ctx, JobTrackerAddInput{Title: "B", Company: "Y", Status: "applied"})
	require.NoError(t, err)

	list, err := tr.List(ctx, JobTrackerListInput{Status: "applied"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "B", list.Jobs[0].Title)

	_, err = tr.List(ctx, JobTrackerListInput{Status: "ghosted"})
	assert.Error(t, err, "invalid status filter")
}

func TestTrackerUpdate(t *testing.T) {
	tr := openTestTracker(t)
	ctx := context.Background()

	res, err := tr.Add(ctx, JobTrackerAddInput{Title: "A", Company: "X"})
	require.NoError(t, err)

	_, err = tr.Update(ctx, JobTrackerUpdateInput{ID: res.ID, Status: "interview", Notes: "onsite Friday"})
	require.NoError(t, err)

	list, err := tr.List(ctx, JobTrackerListInput{})
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, StatusInterview, list.Jobs[0].Status)
	assert.Equal(t, "onsite Friday", list.Jobs[0].Notes)

	_, err = tr.Update(ctx, JobTrackerUpdateInput{ID: 9999, Status: "applied"})
	assert.Error(t, err, "unknown id")

	_, err = tr.Update(ctx, JobTrackerUpdateInput{ID: res.ID})
	assert.Error(t, err, "nothing to update")
}
