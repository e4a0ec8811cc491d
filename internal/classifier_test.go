package internal

import "testing"

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		phrase  string
		context string
		want    Priority
	}{
		{
			name:   "no markers defaults to medium",
			phrase: "call the bank",
			want:   PriorityMedium,
		},
		{
			name:   "urgent marker",
			phrase: "urgent: renew the certificate",
			want:   PriorityHigh,
		},
		{
			name:   "asap marker",
			phrase: "fix the build asap",
			want:   PriorityHigh,
		},
		{
			name:   "immediately marker",
			phrase: "restart the worker immediately",
			want:   PriorityHigh,
		},
		{
			name:   "emphasis markers",
			phrase: "ship the hotfix!!",
			want:   PriorityHigh,
		},
		{
			name:   "deferral marker",
			phrase: "tidy up the docs eventually",
			want:   PriorityLow,
		},
		{
			name:   "when you have time deferral",
			phrase: "review my branch when you have time",
			want:   PriorityLow,
		},
		{
			name:   "no rush deferral",
			phrase: "update the readme, no rush",
			want:   PriorityLow,
		},
		{
			name:   "urgency beats deferral",
			phrase: "urgent but eventually clean the cache",
			want:   PriorityHigh,
		},
		{
			name:    "urgency in surrounding context",
			phrase:  "call the vendor",
			context: "This is critical, I need to call the vendor",
			want:    PriorityHigh,
		},
		{
			name:    "deferral in surrounding context",
			phrase:  "archive old sessions",
			context: "Someday I should archive old sessions",
			want:    PriorityLow,
		},
		{
			name:   "urgency is case insensitive",
			phrase: "URGENT rotate the keys",
			want:   PriorityHigh,
		},
		{
			name:   "later as plain word defers",
			phrase: "deal with the backlog later",
			want:   PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPriority(tt.phrase, tt.context)
			if got != tt.want {
				t.Errorf("ClassifyPriority(%q, %q) = %q, want %q", tt.phrase, tt.context, got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{" med ", PriorityMedium, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
