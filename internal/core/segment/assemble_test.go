package segment

import (
	"strings"
	"testing"

	perr "winback/internal/platform/errors"
)

func TestAssemble_JoinsIdentity(t *testing.T) {
	customers := map[string]Customer{
		"c1": {ID: "c1", Name: "Ada Lovelace", Email: "ada@example.com"},
		"c2": {ID: "c2", Name: "Alan Turing", Email: "alan@example.com"},
	}
	in := []Summary{
		{CustomerID: "c2", TotalSpend: dec(t, "900"), LastCompletedAt: day(1)},
		{CustomerID: "c1", TotalSpend: dec(t, "800"), LastCompletedAt: day(2)},
	}

	rows, err := Assemble(in, customers)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Email != "alan@example.com" || rows[1].Email != "ada@example.com" {
		t.Fatalf("identity join wrong or order not preserved: %+v", rows)
	}
	if !rows[0].TotalSpend.Equal(dec(t, "900")) {
		t.Fatalf("spend not carried through: %s", rows[0].TotalSpend)
	}
}

func TestAssemble_MissingCustomerAborts(t *testing.T) {
	in := []Summary{{CustomerID: "ghost", TotalSpend: dec(t, "900"), LastCompletedAt: day(1)}}

	_, err := Assemble(in, map[string]Customer{})
	if err == nil {
		t.Fatalf("expected integrity error")
	}
	if !perr.IsCode(err, perr.ErrorCodeIntegrity) {
		t.Fatalf("expected integrity code, got %v", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("error must name the dangling customer id: %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "customer_id" {
		t.Fatalf("expected customer_id field on error, got %v", err)
	}
}
