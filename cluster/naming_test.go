package cluster

import "testing"

func TestClusterName(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    string
	}{
		{
			name: "shortest member with most frequent word",
			members: []string{
				"leukemia treatment options",
				"childhood leukemia",
				"leukemia survival rate",
				"bone marrow transplant",
			},
			want: "Childhood Leukemia",
		},
		{
			name: "stopwords are ignored",
			members: []string{
				"cancer of the lung",
				"lung cancer screening",
				"lung nodule",
			},
			want: "Lung Nodule",
		},
		{
			name:    "long names are truncated",
			members: []string{"chimeric antigen receptor t cell therapy"},
			want:    "Chimeric Antigen Recep...",
		},
		{
			name: "overlong match falls back to shortest member",
			members: []string{
				"immunotherapy infusion reaction management",
				"immunotherapy side effects in children",
				"car t",
			},
			want: "Car T",
		},
		{
			name:    "single member",
			members: []string{"gene therapy"},
			want:    "Gene Therapy",
		},
		{
			name:    "no members",
			members: nil,
			want:    "Unnamed",
		},
		{
			name:    "all stopwords",
			members: []string{"the cancer", "a disease"},
			want:    "The Cancer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClusterName(tt.members); got != tt.want {
				t.Errorf("ClusterName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "Hello World"},
		{"CAR t therapy", "Car T Therapy"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
