package lending

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHead(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	assert.Equal(t, []string{"name", "email", "phone", "credits", "created", "id"}, Head(&m))
	assert.Equal(t, []string{"name", "email", "phone"}, EditableHead(&m))

	item := demoItem(t)
	assert.Equal(t,
		[]string{"name", "description", "category", "owner", "cost_per_day", "created", "available", "history", "id"},
		Head(&item))
	assert.Equal(t, []string{"name", "description", "category", "cost_per_day"}, EditableHead(&item))

	c := demoContract(t, 6, 6)
	assert.Equal(t,
		[]string{"owner", "lendee", "start_day", "end_day", "length", "credits", "status", "id"},
		Head(&c))
	assert.Equal(t, []string{"end_day", "length", "credits"}, EditableHead(&c))
}

func TestToMap(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 3)
	data := ToMap(&m)
	assert.Equal(t, "Allan", data["name"])
	assert.Equal(t, "allan@enigma.com", data["email"])
	assert.Equal(t, "0", data["credits"])
	assert.Equal(t, "3", data["created"])
	assert.Equal(t, m.ID.String(), data["id"])
}

func TestMemberMapRoundTrip(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 3)
	require.NoError(t, m.AddCredits(decimal.NewFromInt(100)))

	got, err := MemberFromMap(ToMap(&m))
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestParseMemberRoundTrip(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	got, err := ParseMember(m.String())
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestParseContractRoundTrip(t *testing.T) {
	c := demoContract(t, 6, 6)
	c.SetStatus(StatusCanceled)

	got, err := ParseContract(c.String())
	require.NoError(t, err)
	assert.True(t, got.DeepEqual(c), "got %s, want %s", got, c)
}

func TestParseItemRoundTrip(t *testing.T) {
	item := demoItem(t)
	got, err := ParseItem(item.String())
	require.NoError(t, err)
	assert.True(t, got.Equal(item))
}

// The interesting case: contracts nested inside the item carry their own
// bracketed member records, so the decoder has to split on depth, not on
// raw separators.
func TestParseItemWithHistory(t *testing.T) {
	item := demoItem(t)
	require.NoError(t, item.AddContract(bookingFor(t, item, 0, 5), 0))
	require.NoError(t, item.AddContract(bookingFor(t, item, 10, 5), 0))

	got, err := ParseItem(item.String())
	require.NoError(t, err)
	require.Len(t, got.History, 2)
	assert.True(t, got.Equal(item))
	assert.True(t, got.History[0].Lendee.Equal(item.History[0].Lendee))
}

func TestEmptyHistoryEncoding(t *testing.T) {
	item := demoItem(t)
	assert.Equal(t, emptyList, ToMap(&item)["history"])

	got, err := ParseItem(item.String())
	require.NoError(t, err)
	assert.Empty(t, got.History)
}

func TestMemberCopyWith(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	require.NoError(t, m.AddCredits(decimal.NewFromInt(100)))

	got, err := m.CopyWith(map[string]string{"name": "Alan", "phone": "9876567890"})
	require.NoError(t, err)
	assert.Equal(t, "Alan", got.Name)
	assert.Equal(t, "9876567890", got.Phone)
	assert.Equal(t, m.Email, got.Email)
	assert.Equal(t, m.ID, got.ID)
	assert.True(t, got.Credits.Equal(m.Credits))
}

func TestItemCopyWith(t *testing.T) {
	item := demoItem(t)
	require.NoError(t, item.AddContract(bookingFor(t, item, 0, 5), 0))

	got, err := item.CopyWith(map[string]string{"cost_per_day": "42.5", "category": "Tool"})
	require.NoError(t, err)
	assert.True(t, got.CostPerDay.Equal(decimal.RequireFromString("42.5")))
	assert.Equal(t, CategoryTool, got.Category)
	assert.Equal(t, item.Name, got.Name)
	assert.Len(t, got.History, 1)

	_, err = item.CopyWith(map[string]string{"cost_per_day": "not-a-number"})
	assert.Error(t, err)
}

func TestMemberFromMapMissingField(t *testing.T) {
	m := mustMember(t, "Allan", "allan@enigma.com", "0123456789", 0)
	data := ToMap(&m)
	delete(data, "phone")

	_, err := MemberFromMap(data)
	assert.ErrorContains(t, err, "phone")
}

func TestDecodeRecord(t *testing.T) {
	data, err := DecodeRecord("[name,Allan;credits,100]")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Allan", "credits": "100"}, data)
}

func TestDecodeRecordValueWithComma(t *testing.T) {
	data, err := DecodeRecord("[description,small, red and heavy]")
	require.NoError(t, err)
	assert.Equal(t, "small, red and heavy", data["description"])
}

func TestDecodeRecordMalformed(t *testing.T) {
	for _, s := range []string{"", "name,Allan", "[name,Allan", "name,Allan]", "[justakey]"} {
		_, err := DecodeRecord(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestSplitTopLevel(t *testing.T) {
	parts := splitTopLevel("a,1;b,[x,1;y,2];c,3", ';')
	assert.Equal(t, []string{"a,1", "b,[x,1;y,2]", "c,3"}, parts)
}
