package services_test

import (
	"strings"
	"testing"

	"github.com/freelancenexus/nexus-go/src/services"
)

func TestUPIServiceValidation(t *testing.T) {
	upi := services.NewUPIService()

	valid := []string{"alice@upi", "bob.dev@okbank", "a-b_c@pay"}
	for _, id := range valid {
		if !upi.IsValidUPIID(id) {
			t.Fatalf("expected %q to be valid", id)
		}
	}

	invalid := []string{"", "alice", "@bank", "a@1", "alice@", "a b@upi"}
	for _, id := range invalid {
		if upi.IsValidUPIID(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}

func TestUPIServicePaymentLink(t *testing.T) {
	upi := services.NewUPIService()

	txn := upi.GeneratePaymentLink("TXN-ABC123", 750, "alice@upi", "INR")
	if txn.Status != "INITIATED" {
		t.Fatalf("expected INITIATED, got %s", txn.Status)
	}
	if !strings.HasPrefix(txn.PaymentLink, "upi://pay?") {
		t.Fatalf("unexpected payment link: %s", txn.PaymentLink)
	}
	for _, part := range []string{"pa=alice@upi", "am=750.00", "cu=INR", "tr=TXN-ABC123"} {
		if !strings.Contains(txn.PaymentLink, part) {
			t.Fatalf("payment link missing %q: %s", part, txn.PaymentLink)
		}
	}

	stored, err := upi.GetTransaction("TXN-ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Amount != 750 {
		t.Fatalf("expected amount 750, got %v", stored.Amount)
	}
}

func TestUPIServiceVerification(t *testing.T) {
	t.Run("unknown transaction", func(t *testing.T) {
		upi := services.NewUPIService()

		result := upi.VerifyPayment("TXN-MISSING")
		if result.Success || result.Status != "INVALID" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("resolves to a terminal status", func(t *testing.T) {
		upi := services.NewUPIService()
		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")

		// The simulator flips a weighted coin, so only the shape of
		// the outcome is deterministic.
		result := upi.VerifyPayment("TXN-1")
		if result.Status != "SUCCESS" && result.Status != "FAILED" {
			t.Fatalf("expected a terminal status, got %s", result.Status)
		}
		if result.Success != (result.Status == "SUCCESS") {
			t.Fatalf("success flag disagrees with status: %+v", result)
		}

		again := upi.VerifyPayment("TXN-1")
		if again.Status != result.Status {
			t.Fatalf("verification is not idempotent: %s then %s", result.Status, again.Status)
		}
		if again.Message != "Transaction already resolved" {
			t.Fatalf("unexpected message: %s", again.Message)
		}
	})
}

func TestUPIServiceCallback(t *testing.T) {
	upi := services.NewUPIService()
	upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")

	resp := upi.ProcessCallback("TXN-1", "SUCCESS")
	if resp["updated"] != true {
		t.Fatalf("expected updated=true, got %v", resp)
	}
	txn, err := upi.GetTransaction("TXN-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Status != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", txn.Status)
	}

	resp = upi.ProcessCallback("TXN-MISSING", "SUCCESS")
	if resp["updated"] != false || resp["acknowledged"] != true {
		t.Fatalf("unexpected response for unknown transaction: %v", resp)
	}
}

func TestUPIServiceRefund(t *testing.T) {
	t.Run("refunds a successful transaction", func(t *testing.T) {
		upi := services.NewUPIService()
		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")
		upi.ProcessCallback("TXN-1", "SUCCESS")

		result := upi.InitiateRefund("TXN-1", 100)
		if !result.Success {
			t.Fatalf("expected refund to succeed: %+v", result)
		}
		if result.RefundTransactionID != "RFD-TXN-1" {
			t.Fatalf("unexpected refund id: %s", result.RefundTransactionID)
		}

		txn, _ := upi.GetTransaction("TXN-1")
		if txn.Status != "REFUNDED" {
			t.Fatalf("expected REFUNDED, got %s", txn.Status)
		}
	})

	t.Run("only successful transactions refund", func(t *testing.T) {
		upi := services.NewUPIService()
		upi.GeneratePaymentLink("TXN-1", 100, "alice@upi", "INR")

		if result := upi.InitiateRefund("TXN-1", 100); result.Success {
			t.Fatal("expected refund of an initiated transaction to fail")
		}
		if result := upi.InitiateRefund("TXN-MISSING", 100); result.Success {
			t.Fatal("expected refund of an unknown transaction to fail")
		}
	})
}
