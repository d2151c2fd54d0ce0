package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/freelancenexus/nexus-go/src/models"
)

func createProject(t *testing.T, clientID uint, token, title string) models.Project {
	t.Helper()

	body := map[string]interface{}{
		"client_id":       clientID,
		"title":           title,
		"description":     "Build and ship the thing end to end.",
		"budget_min":      500,
		"budget_max":      1500,
		"required_skills": []string{"go", "postgres"},
		"category":        "web",
		"duration_days":   14,
		"deadline":        time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}
	resp := doRequest(t, projectRouter, "POST", "/projects", token, body, http.StatusCreated)

	var project models.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &project))
	require.Equal(t, models.ProjectStatusOpen, project.Status)
	return project
}

func submitProposal(t *testing.T, projectID uint, token string, expectStatus int) models.Proposal {
	t.Helper()

	body := map[string]interface{}{
		"cover_letter":    "I have shipped three projects just like this one and can start immediately.",
		"proposed_budget": 900,
		"delivery_days":   10,
	}
	resp := doRequest(t, projectRouter, "POST", fmt.Sprintf("/projects/%d/proposals", projectID), token, body, expectStatus)

	var proposal models.Proposal
	if expectStatus == http.StatusCreated {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &proposal))
	}
	return proposal
}

func getProject(t *testing.T, id uint) models.Project {
	t.Helper()

	resp := doRequest(t, projectRouter, "GET", fmt.Sprintf("/projects/%d", id), "", nil, http.StatusOK)
	var project models.Project
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &project))
	return project
}

func TestProjectLifecycle(t *testing.T) {
	clientID, clientToken := registerAndLogin(t, "pm-client", "CLIENT")
	devID, devToken := registerAndLogin(t, "pm-dev", "FREELANCER")
	dev2ID, dev2Token := registerAndLogin(t, "pm-dev2", "FREELANCER")

	project := createProject(t, clientID, clientToken, "Marketplace backend")

	t.Run("freelancers cannot create projects", func(t *testing.T) {
		body := map[string]interface{}{"title": "nope"}
		doRequest(t, projectRouter, "POST", "/projects", devToken, body, http.StatusForbidden)
	})

	winning := submitProposal(t, project.ID, devToken, http.StatusCreated)
	losing := submitProposal(t, project.ID, dev2Token, http.StatusCreated)

	t.Run("the submitter comes from the token", func(t *testing.T) {
		require.Equal(t, devID, winning.FreelancerID)
		require.Equal(t, dev2ID, losing.FreelancerID)
	})

	t.Run("one proposal per freelancer", func(t *testing.T) {
		submitProposal(t, project.ID, devToken, http.StatusConflict)
	})

	t.Run("proposal count shows on the project", func(t *testing.T) {
		require.Equal(t, 2, getProject(t, project.ID).ProposalCount)
	})

	t.Run("accepting settles every proposal and the project", func(t *testing.T) {
		doRequest(t, projectRouter, "PUT", fmt.Sprintf("/proposals/%d/accept", winning.ID), clientToken, nil, http.StatusOK)

		updated := getProject(t, project.ID)
		require.Equal(t, models.ProjectStatusInProgress, updated.Status)
		require.NotNil(t, updated.AssignedFreelancer)
		require.Equal(t, devID, *updated.AssignedFreelancer)

		resp := doRequest(t, projectRouter, "GET", fmt.Sprintf("/proposals/%d", losing.ID), dev2Token, nil, http.StatusOK)
		var loser models.Proposal
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &loser))
		require.Equal(t, models.ProposalStatusRejected, loser.Status)
	})

	t.Run("closed projects take no proposals", func(t *testing.T) {
		body := map[string]interface{}{
			"cover_letter":    "Too late to the party but still a very thorough and relevant cover letter.",
			"proposed_budget": 700,
			"delivery_days":   7,
		}
		doRequest(t, projectRouter, "POST", fmt.Sprintf("/projects/%d/proposals", project.ID), dev2Token, body, http.StatusBadRequest)
	})

	t.Run("accepting twice fails", func(t *testing.T) {
		doRequest(t, projectRouter, "PUT", fmt.Sprintf("/proposals/%d/accept", winning.ID), clientToken, nil, http.StatusBadRequest)
	})

	t.Run("complete the project", func(t *testing.T) {
		doRequest(t, projectRouter, "PUT", fmt.Sprintf("/projects/%d/complete", project.ID), clientToken, nil, http.StatusOK)
		require.Equal(t, models.ProjectStatusCompleted, getProject(t, project.ID).Status)
	})

	t.Run("completed projects cannot be deleted", func(t *testing.T) {
		doRequest(t, projectRouter, "DELETE", fmt.Sprintf("/projects/%d", project.ID), clientToken, nil, http.StatusBadRequest)
	})
}

// Two clients racing to accept different proposals of the same project
// must resolve to exactly one winner; the project row lock inside the
// accept transaction serializes them.
func TestConcurrentAcceptSingleWinner(t *testing.T) {
	clientID, clientToken := registerAndLogin(t, "ca-client", "CLIENT")
	_, dev1Token := registerAndLogin(t, "ca-dev1", "FREELANCER")
	_, dev2Token := registerAndLogin(t, "ca-dev2", "FREELANCER")

	project := createProject(t, clientID, clientToken, "Contended build")
	p1 := submitProposal(t, project.ID, dev1Token, http.StatusCreated)
	p2 := submitProposal(t, project.ID, dev2Token, http.StatusCreated)

	accept := func(proposalID uint) int {
		req := httptest.NewRequest("PUT", fmt.Sprintf("/proposals/%d/accept", proposalID), nil)
		req.Header.Set("Authorization", "Bearer "+clientToken)
		w := httptest.NewRecorder()
		projectRouter.ServeHTTP(w, req)
		return w.Code
	}

	start := make(chan struct{})
	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i, id := range []uint{p1.ID, p2.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			<-start
			codes[i] = accept(id)
		}(i, id)
	}
	close(start)
	wg.Wait()

	require.ElementsMatch(t, []int{http.StatusOK, http.StatusBadRequest}, codes,
		"exactly one accept must win")

	updated := getProject(t, project.ID)
	require.Equal(t, models.ProjectStatusInProgress, updated.Status)
	require.NotNil(t, updated.AssignedFreelancer)

	statusOf := func(proposalID uint) models.ProposalStatus {
		resp := doRequest(t, projectRouter, "GET", fmt.Sprintf("/proposals/%d", proposalID), clientToken, nil, http.StatusOK)
		var p models.Proposal
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))
		return p.Status
	}
	require.ElementsMatch(t,
		[]models.ProposalStatus{models.ProposalStatusAccepted, models.ProposalStatusRejected},
		[]models.ProposalStatus{statusOf(p1.ID), statusOf(p2.ID)})

	if statusOf(p1.ID) == models.ProposalStatusAccepted {
		require.Equal(t, p1.FreelancerID, *updated.AssignedFreelancer)
	} else {
		require.Equal(t, p2.FreelancerID, *updated.AssignedFreelancer)
	}
}

func TestProjectCancelAndDelete(t *testing.T) {
	clientID, clientToken := registerAndLogin(t, "pc-client", "CLIENT")

	t.Run("cancel an open project", func(t *testing.T) {
		project := createProject(t, clientID, clientToken, "Cancelled build")
		doRequest(t, projectRouter, "PUT", fmt.Sprintf("/projects/%d/cancel", project.ID), clientToken, nil, http.StatusOK)
		require.Equal(t, models.ProjectStatusCancelled, getProject(t, project.ID).Status)
	})

	t.Run("delete an open project", func(t *testing.T) {
		project := createProject(t, clientID, clientToken, "Deleted build")
		doRequest(t, projectRouter, "DELETE", fmt.Sprintf("/projects/%d", project.ID), clientToken, nil, http.StatusOK)
		doRequest(t, projectRouter, "GET", fmt.Sprintf("/projects/%d", project.ID), "", nil, http.StatusNotFound)
	})

	t.Run("validation happens before persistence", func(t *testing.T) {
		body := map[string]interface{}{
			"client_id":       clientID,
			"title":           "Bad budget",
			"description":     "min above max",
			"budget_min":      2000,
			"budget_max":      100,
			"required_skills": []string{"go"},
			"category":        "web",
			"duration_days":   5,
			"deadline":        time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		}
		doRequest(t, projectRouter, "POST", "/projects", clientToken, body, http.StatusBadRequest)
	})
}
