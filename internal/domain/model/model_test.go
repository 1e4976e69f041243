package model

import (
	"testing"
	"time"
)

func TestApprovalStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   ApprovalStatus
		value string
	}{
		{"created", ApprovalStatusCreated, "Created"},
		{"pending", ApprovalStatusPending, "Pending"},
		{"approved", ApprovalStatusApproved, "Approved"},
		{"rejected", ApprovalStatusRejected, "Rejected"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if tc.got.Badge() != tc.got {
				t.Fatalf("expected badge %s, got %s", tc.got, tc.got.Badge())
			}
		})
	}

	if got := ApprovalStatus("Archived").Badge(); got != ApprovalStatusCreated {
		t.Fatalf("expected unknown status to fall back to Created, got %s", got)
	}
}

func TestOnlyPendingIsReviewable(t *testing.T) {
	for _, s := range []ApprovalStatus{ApprovalStatusCreated, ApprovalStatusApproved, ApprovalStatusRejected, "Archived"} {
		if s.Reviewable() {
			t.Fatalf("did not expect %q to be reviewable", s)
		}
	}
	if !ApprovalStatusPending.Reviewable() {
		t.Fatal("expected pending order to be reviewable")
	}
}

func TestDomainSetIsClosed(t *testing.T) {
	domains := AllDomains()
	if len(domains) != 8 {
		t.Fatalf("expected 8 domains, got %d", len(domains))
	}
	for _, d := range domains {
		if _, ok := ParseDomain(string(d)); !ok {
			t.Fatalf("expected %q to parse", d)
		}
	}
	if _, ok := ParseDomain("purchaseOrders"); ok {
		t.Fatal("expected unknown domain to be rejected")
	}

	domains[0] = "mutated"
	if AllDomains()[0] != DomainOrders {
		t.Fatal("expected AllDomains to return a copy")
	}
}

func TestApprovalActionReason(t *testing.T) {
	if Approve().RejectionReason() != nil {
		t.Fatal("expected approve to carry no reason")
	}
	reason := Reject("").RejectionReason()
	if reason == nil || *reason != "" {
		t.Fatalf("expected empty reason to be kept, got %v", reason)
	}
	if got := *Reject("damaged stock").RejectionReason(); got != "damaged stock" {
		t.Fatalf("unexpected reason %q", got)
	}
	if _, ok := ParseApprovalKind("escalate"); ok {
		t.Fatal("expected unknown action to be rejected")
	}
}

func TestLineItemSet(t *testing.T) {
	line := EmptyLine()
	if line.Qty != "1" {
		t.Fatalf("expected default qty 1, got %q", line.Qty)
	}
	if !line.Set(FieldIMEI, "356938035643809") || line.IMEI != "356938035643809" {
		t.Fatalf("expected imei to be set, got %+v", line)
	}
	if line.Set("discount", "5") {
		t.Fatal("expected unknown field to be reported")
	}
}

func TestNewDraftAndClone(t *testing.T) {
	day := time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC)
	d := NewDraft(day)
	if !d.Date.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date truncated to day, got %v", d.Date)
	}
	if d.Office != OfficeHead || len(d.Lines) != 1 {
		t.Fatalf("unexpected fresh draft %+v", d)
	}

	c := d.Clone()
	c.Lines[0].Vendor = "Acme"
	if d.Lines[0].Vendor != "" {
		t.Fatal("expected clone to be independent")
	}
}

func TestUserInitial(t *testing.T) {
	if got := (User{Name: "  ravi"}).Initial(); got != "R" {
		t.Fatalf("expected R, got %q", got)
	}
	if got := (User{}).Initial(); got != "" {
		t.Fatalf("expected empty initial, got %q", got)
	}
	if !OfficeBranch.Valid() || Office("Remote").Valid() {
		t.Fatal("unexpected office validity")
	}
}
