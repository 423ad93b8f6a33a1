package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"chuỗi ngắn giữ nguyên", "xin chào", 20, "xin chào"},
		{"chuỗi dài bị cắt", "0123456789", 5, "01234..."},
		{"đúng bằng giới hạn", "abcde", 5, "abcde"},
		{"maxRunes không dương giữ nguyên", "abcdef", 0, "abcdef"},
		{"đếm theo rune không cắt giữa UTF-8", "tiệm bánh ngọt", 9, "tiệm bánh..."},
		{"chuỗi rỗng", "", 5, ""},
	}
	for _, tt := range tests {
		got := TruncateString(tt.input, tt.maxRunes)
		if got != tt.want {
			t.Errorf("%s: TruncateString(%q, %d) = %q, muốn %q", tt.name, tt.input, tt.maxRunes, got, tt.want)
		}
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID không round-trip: %v != %v", got, id)
	}
	if got := String2ObjectID("không phải hex"); got != primitive.NilObjectID {
		t.Errorf("chuỗi không hợp lệ phải trả về NilObjectID, nhận %v", got)
	}
}

func TestToMap_RespectsBsonTags(t *testing.T) {
	type sample struct {
		Name  string `bson:"tenHienThi"`
		Count int    `bson:"soLuong"`
	}
	m, err := ToMap(sample{Name: "Tiệm Bánh", Count: 3})
	if err != nil {
		t.Fatalf("ToMap trả về lỗi: %v", err)
	}
	if m["tenHienThi"] != "Tiệm Bánh" {
		t.Errorf("thiếu key theo bson tag, map = %v", m)
	}
	if _, ok := m["Name"]; ok {
		t.Errorf("không được chứa tên field Go, map = %v", m)
	}
}
