package goal

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
)

func strPtr(v string) *string { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestTimeframe_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		timeframe Timeframe
		want      bool
	}{
		{
			name:      "long is valid",
			timeframe: TimeframeLong,
			want:      true,
		},
		{
			name:      "medium is valid",
			timeframe: TimeframeMedium,
			want:      true,
		},
		{
			name:      "short is valid",
			timeframe: TimeframeShort,
			want:      true,
		},
		{
			name:      "task is valid",
			timeframe: TimeframeTask,
			want:      true,
		},
		{
			name:      "empty string is invalid",
			timeframe: "",
			want:      false,
		},
		{
			name:      "unknown value is invalid",
			timeframe: "quarterly",
			want:      false,
		},
		{
			name:      "case sensitive",
			timeframe: "Long",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.timeframe.IsValid(); got != tt.want {
				t.Errorf("Timeframe(%q).IsValid() = %v, want %v", tt.timeframe, got, tt.want)
			}
		})
	}
}

func TestTimeframe_Rank_ShortestBindsFirst(t *testing.T) {
	t.Parallel()

	order := []Timeframe{TimeframeTask, TimeframeShort, TimeframeMedium, TimeframeLong}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("Rank(%s) = %d not below Rank(%s) = %d",
				order[i-1], order[i-1].Rank(), order[i], order[i].Rank())
		}
	}

	if Timeframe("bogus").Rank() <= TimeframeLong.Rank() {
		t.Errorf("unknown timeframe must rank after long, got %d", Timeframe("bogus").Rank())
	}
}

func TestGoal_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Goal {
		return Goal{
			Title:     "Reduce monthly expenses",
			Timeframe: TimeframeMedium,
			Domains:   []string{"finance"},
		}
	}

	t.Run("valid goal passes", func(t *testing.T) {
		t.Parallel()
		g := valid()
		if err := g.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		g := valid()
		g.Title = "   "
		requireValidationField(t, g.Validate(), "title")
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		t.Parallel()
		g := valid()
		g.Timeframe = "yearly"
		requireValidationField(t, g.Validate(), "timeframe")
	})

	t.Run("empty domain entry", func(t *testing.T) {
		t.Parallel()
		g := valid()
		g.Domains = []string{"finance", " "}
		requireValidationField(t, g.Validate(), "domains")
	})

	t.Run("blank parent id", func(t *testing.T) {
		t.Parallel()
		g := valid()
		g.ParentID = strPtr("  ")
		requireValidationField(t, g.Validate(), "parent_id")
	})

	t.Run("no domains is allowed", func(t *testing.T) {
		t.Parallel()
		g := valid()
		g.Domains = nil
		if err := g.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil for goal without domains", err)
		}
	})

	t.Run("multiple failures reported together", func(t *testing.T) {
		t.Parallel()
		g := Goal{Timeframe: "bogus"}
		err := g.Validate()
		requireValidationField(t, err, "title")
		requireValidationField(t, err, "timeframe")
	})
}

func TestNormalizeDomains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "nil stays nil",
			in:   nil,
			want: nil,
		},
		{
			name: "trims lowercases dedupes and sorts",
			in:   []string{" Finance ", "calendar", "finance", "FINANCE"},
			want: []string{"calendar", "finance"},
		},
		{
			name: "empty entries survive for validation",
			in:   []string{"tasks", "  "},
			want: []string{"", "tasks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeDomains(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeDomains(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGoal_HasDomain(t *testing.T) {
	t.Parallel()

	g := Goal{Domains: []string{"calendar", "finance"}}

	if !g.HasDomain("finance") {
		t.Error("HasDomain(finance) = false, want true")
	}
	if !g.HasDomain(" Finance ") {
		t.Error("HasDomain should normalize its argument")
	}
	if g.HasDomain("tasks") {
		t.Error("HasDomain(tasks) = true, want false")
	}
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	g := Goal{
		Title:     "Protect evenings",
		Timeframe: TimeframeShort,
		Domains:   []string{"calendar"},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{
			name:   "zero filter matches everything",
			filter: Filter{},
			want:   true,
		},
		{
			name:   "domain match",
			filter: Filter{Domain: "calendar"},
			want:   true,
		},
		{
			name:   "domain mismatch",
			filter: Filter{Domain: "finance"},
			want:   false,
		},
		{
			name:   "timeframe match",
			filter: Filter{Timeframe: TimeframeShort},
			want:   true,
		},
		{
			name:   "timeframe mismatch",
			filter: Filter{Timeframe: TimeframeLong},
			want:   false,
		},
		{
			name:   "both criteria must hold",
			filter: Filter{Domain: "calendar", Timeframe: TimeframeLong},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(&g); got != tt.want {
				t.Errorf("Filter%+v.Matches() = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}
