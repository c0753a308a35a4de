package models

import "testing"

func TestRedFlag_SeverityBounds(t *testing.T) {
	for _, f := range AllRedFlags {
		s := f.Severity()
		if s < 5 || s > 30 {
			t.Errorf("flag %s severity %d out of [5,30]", f, s)
		}
	}
}

func TestRedFlag_DescriptionsComplete(t *testing.T) {
	for _, f := range AllRedFlags {
		if f.Description() == "" {
			t.Errorf("flag %s has no description", f)
		}
	}
}

func TestRedFlag_UnknownFlagWeighsZero(t *testing.T) {
	if got := RedFlag("made_up").Severity(); got != 0 {
		t.Errorf("unknown flag severity = %d, want 0", got)
	}
}

func TestNewHeuristicsResult_ClampsScore(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{250, 100},
	}
	for _, c := range cases {
		r := NewHeuristicsResult(c.in, nil, ChannelUnknown, nil, nil, nil, nil)
		if r.RiskScore != c.want {
			t.Errorf("score %d clamped to %d, want %d", c.in, r.RiskScore, c.want)
		}
	}
}

func TestNewHeuristicsResult_DeduplicatesFlags(t *testing.T) {
	r := NewHeuristicsResult(0, []RedFlag{
		RedFlagShortlink, RedFlagNoHTTPS, RedFlagShortlink, RedFlagNoHTTPS, RedFlagRiskyTLD,
	}, ChannelSMS, nil, nil, nil, nil)

	want := []RedFlag{RedFlagShortlink, RedFlagNoHTTPS, RedFlagRiskyTLD}
	if len(r.RedFlags) != len(want) {
		t.Fatalf("got %v, want %v", r.RedFlags, want)
	}
	for i := range want {
		if r.RedFlags[i] != want[i] {
			t.Errorf("order not preserved: got %v, want %v", r.RedFlags, want)
		}
	}
}

func TestHeuristicsResult_RiskLevelBuckets(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelLow},
		{19, RiskLevelLow},
		{20, RiskLevelMedium},
		{49, RiskLevelMedium},
		{50, RiskLevelHigh},
		{79, RiskLevelHigh},
		{80, RiskLevelCritical},
		{100, RiskLevelCritical},
	}
	for _, c := range cases {
		r := NewHeuristicsResult(c.score, nil, ChannelUnknown, nil, nil, nil, nil)
		if got := r.RiskLevel(); got != c.want {
			t.Errorf("score %d -> %s, want %s", c.score, got, c.want)
		}
	}
}

func TestHeuristicsResult_HighRiskThreshold(t *testing.T) {
	if NewHeuristicsResult(49, nil, ChannelUnknown, nil, nil, nil, nil).IsHighRisk() {
		t.Error("49 must not be high risk")
	}
	if !NewHeuristicsResult(50, nil, ChannelUnknown, nil, nil, nil, nil).IsHighRisk() {
		t.Error("50 must be high risk")
	}
}

func TestURLIntelSummary_HighRiskThreshold(t *testing.T) {
	// Intel threshold is 70, stricter than the heuristic 50.
	if NewURLIntelSummary(69, VerdictSuspicious, SourceVirusTotal, nil, nil, "").IsHighRisk() {
		t.Error("69 must not be high risk")
	}
	if !NewURLIntelSummary(70, VerdictMalicious, SourceVirusTotal, nil, nil, "").IsHighRisk() {
		t.Error("70 must be high risk")
	}
}

func TestNewURLIntelSummary_Clamps(t *testing.T) {
	if got := NewURLIntelSummary(150, VerdictMalicious, SourceURLScan, nil, nil, "").RiskScore; got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
	if got := NewURLIntelSummary(-5, VerdictUnknown, SourceNone, nil, nil, "").RiskScore; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestEmptyIntelSummary(t *testing.T) {
	s := EmptyIntelSummary()
	if s.RiskScore != 0 || s.Verdict != VerdictUnknown || s.Source != SourceNone {
		t.Errorf("unexpected neutral summary: %+v", s)
	}
	if s.IsHighRisk() {
		t.Error("neutral summary must not be high risk")
	}
}

func TestCombinedAnalysis_HighRisk(t *testing.T) {
	a := &CombinedAnalysis{CombinedScore: 50}
	if !a.IsHighRisk() {
		t.Error("50 must be high risk")
	}
	a.CombinedScore = 49
	if a.IsHighRisk() {
		t.Error("49 must not be high risk")
	}
}

func TestCommunicationChannel_Descriptions(t *testing.T) {
	channels := []CommunicationChannel{
		ChannelSMS, ChannelEmail, ChannelWhatsApp, ChannelSocialMedia, ChannelUnknown,
	}
	for _, c := range channels {
		if c.Description() == "" {
			t.Errorf("channel %s has no description", c)
		}
	}
}
