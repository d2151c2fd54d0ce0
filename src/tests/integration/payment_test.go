package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/models"
)

func TestPaymentFlow(t *testing.T) {
	clientID, clientToken := registerAndLogin(t, "pay-client", "CLIENT")
	devID, devToken := registerAndLogin(t, "pay-dev", "FREELANCER")

	project := createProject(t, clientID, clientToken, "Paid build")

	initiate := map[string]interface{}{
		"project_id": project.ID,
		"payer_id":   clientID,
		"payee_id":   devID,
		"amount":     1200,
		"upi_id":     "pay-client@upi",
	}

	var payment models.Payment
	t.Run("initiate", func(t *testing.T) {
		resp := doRequest(t, paymentRouter, "POST", "/payments", clientToken, initiate, http.StatusCreated)
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payment))
		require.Equal(t, models.PaymentStatusInitiated, payment.Status)
		require.NotEmpty(t, payment.TransactionID)
		require.Contains(t, payment.PaymentLink, "upi://pay?")
		require.Equal(t, "INR", payment.Currency)
	})

	t.Run("freelancers cannot initiate", func(t *testing.T) {
		doRequest(t, paymentRouter, "POST", "/payments", devToken, initiate, http.StatusForbidden)
	})

	t.Run("malformed UPI id", func(t *testing.T) {
		bad := map[string]interface{}{
			"project_id": project.ID,
			"payer_id":   clientID,
			"payee_id":   devID,
			"amount":     100,
			"upi_id":     "not-a-upi-id",
		}
		doRequest(t, paymentRouter, "POST", "/payments", clientToken, bad, http.StatusBadRequest)
	})

	t.Run("gateway callback settles the record", func(t *testing.T) {
		body := map[string]string{"transaction_id": payment.TransactionID, "status": "SUCCESS"}
		doRequest(t, paymentRouter, "POST", "/payments/callback", "", body, http.StatusOK)
	})

	t.Run("verify reports completion", func(t *testing.T) {
		resp := doRequest(t, paymentRouter, "POST", "/payments/verify/"+payment.TransactionID, clientToken, nil, http.StatusOK)

		var status dto.TransactionStatusDTO
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
		require.True(t, status.Success)
		require.Equal(t, "COMPLETED", status.Status)
	})

	t.Run("refund a completed payment", func(t *testing.T) {
		body := map[string]string{"reason": "scope change"}
		resp := doRequest(t, paymentRouter, "POST", fmt.Sprintf("/payments/%d/refund", payment.ID), clientToken, body, http.StatusOK)

		var refunded models.Payment
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &refunded))
		require.Equal(t, models.PaymentStatusRefunded, refunded.Status)
	})

	t.Run("refunding twice fails", func(t *testing.T) {
		body := map[string]string{"reason": "again"}
		doRequest(t, paymentRouter, "POST", fmt.Sprintf("/payments/%d/refund", payment.ID), clientToken, body, http.StatusBadRequest)
	})

	t.Run("the transaction log tells the story", func(t *testing.T) {
		resp := doRequest(t, paymentRouter, "GET", fmt.Sprintf("/payments/%d/history", payment.ID), clientToken, nil, http.StatusOK)

		var history []models.PaymentHistory
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &history))

		actions := make([]string, 0, len(history))
		for _, h := range history {
			actions = append(actions, h.Action)
		}
		require.Contains(t, actions, "INITIATE")
		require.Contains(t, actions, "CALLBACK")
		require.Contains(t, actions, "VERIFY")
		require.Contains(t, actions, "REFUND")
	})

	t.Run("payments by project", func(t *testing.T) {
		resp := doRequest(t, paymentRouter, "GET", fmt.Sprintf("/payments/by-project/%d", project.ID), clientToken, nil, http.StatusOK)

		var payments []models.Payment
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payments))
		require.Len(t, payments, 1)
	})
}
