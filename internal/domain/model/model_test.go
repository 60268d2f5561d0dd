package model

import "testing"

// TestParseRequestStatus проверяет распознавание статуса заявки без учёта регистра.
func TestParseRequestStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    RequestStatus
		wantErr bool
	}{
		{"PENDING", RequestPending, false},
		{"pending", RequestPending, false},
		{"APPROVED", RequestApproved, false},
		{"approved", RequestApproved, false},
		{"Approved", RequestApproved, false},
		{"REJECTED", RequestRejected, false},
		{"rejected", RequestRejected, false},
		{"bogus", "", true},
		{"", "", true},
		{"APPROVED ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRequestStatus(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRequestStatus(%q): ожидалась ошибка", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRequestStatus(%q): неожиданная ошибка: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRequestStatus(%q): ожидалось %q, получено %q", tt.input, tt.want, got)
		}
	}
}

// TestParseItemStatus проверяет распознавание статуса вещи без учёта регистра.
func TestParseItemStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    ItemStatus
		wantErr bool
	}{
		{"LOST", ItemLost, false},
		{"lost", ItemLost, false},
		{"FOUND", ItemFound, false},
		{"found", ItemFound, false},
		{"CLAIMED", ItemClaimed, false},
		{"Claimed", ItemClaimed, false},
		{"broken", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseItemStatus(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseItemStatus(%q): ожидалась ошибка", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseItemStatus(%q): неожиданная ошибка: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseItemStatus(%q): ожидалось %q, получено %q", tt.input, tt.want, got)
		}
	}
}
