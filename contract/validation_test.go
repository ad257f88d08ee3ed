package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donation_registry/sdk"
)

func TestCreateNameBounds(t *testing.T) {
	setupTest()

	// empty name (payload "|desc") is below the 1-byte minimum
	_, revert := callContract(CreateProject, "|some description", creatorAddr)
	require.NotNil(t, revert)
	assert.Equal(t, ErrIncorrectStringFormat, revert.Symbol)

	// 65 bytes is one over
	long := strings.Repeat("x", 65)
	_, revert = callContract(CreateProject, long+"|", creatorAddr)
	require.NotNil(t, revert)
	assert.Equal(t, ErrIncorrectStringFormat, revert.Symbol)
	assert.Contains(t, revert.Msg, long)

	// both limits inclusive
	createTestProject(t, creatorAddr, "x", "")
	createTestProject(t, creatorAddr, strings.Repeat("y", 64), "")
}

func TestCreateDescriptionBounds(t *testing.T) {
	setupTest()

	_, revert := callContract(CreateProject, "bounded|"+strings.Repeat("d", 1025), creatorAddr)
	require.NotNil(t, revert)
	assert.Equal(t, ErrIncorrectStringFormat, revert.Symbol)

	createTestProject(t, creatorAddr, "bounded", strings.Repeat("d", 1024))
}

func TestDescribeDescriptionBounds(t *testing.T) {
	setupTest()
	id := createTestProject(t, creatorAddr, "bounded", "")

	_, revert := callContract(DescribeProject, id.String()+"|"+strings.Repeat("d", 1025), creatorAddr)
	require.NotNil(t, revert)
	assert.Equal(t, ErrIncorrectStringFormat, revert.Symbol)

	_, revert = callContract(DescribeProject, id.String()+"|"+strings.Repeat("d", 1024), creatorAddr)
	require.Nil(t, revert)
}

func TestDonateMessageBounds(t *testing.T) {
	setupTest()
	id := createTestProject(t, creatorAddr, "bounded", "")

	_, revert := callContract(Donate, id.String()+"|"+strings.Repeat("m", 257), donorAddr, donateIntent("1.000"))
	require.NotNil(t, revert)
	assert.Equal(t, ErrIncorrectStringFormat, revert.Symbol)

	_, revert = callContract(Donate, id.String()+"|"+strings.Repeat("m", 256), donorAddr, donateIntent("1.000"))
	require.Nil(t, revert)
}

func TestFailedGuardLeavesNoTrace(t *testing.T) {
	setupTest()
	id := createTestProject(t, creatorAddr, "untouched", "")
	logsBefore := len(sdk.MockLogs())

	_, revert := callContract(Donate, id.String()+"|", donorAddr, donateIntent("0.000"))
	require.NotNil(t, revert)

	assert.Len(t, sdk.MockLogs(), logsBefore)
	assert.Equal(t, Amount(0), getDonated(donorAddr, id))
	assert.Equal(t, int64(200_000), sdk.GetBalance(donorAddr, sdk.AssetHive))
}

func TestDescriptionMayContainPipes(t *testing.T) {
	setupTest()

	id := createTestProject(t, creatorAddr, "piped", "left|middle|right")
	assert.Contains(t, lastLog(), "d:left|middle|right")

	_, revert := callContract(DescribeProject, id.String()+"|a|b|c", creatorAddr)
	require.Nil(t, revert)
	assert.Contains(t, lastLog(), "d:a|b|c")
}

func TestQuotedPayloadIsUnescaped(t *testing.T) {
	setupTest()

	// JSON-quoted payloads carry escape sequences that must be decoded, not
	// just stripped of their surrounding quotes
	payload := strconv.Quote("quoted|line one\nsays \"hi\"")
	_, revert := callContract(CreateProject, payload, creatorAddr)
	require.Nil(t, revert)
	assert.Contains(t, lastLog(), "n:quoted")
	assert.Contains(t, lastLog(), "d:line one\nsays \"hi\"")
}

func TestMalformedProjectIdAborts(t *testing.T) {
	setupTest()

	_, revert := callContract(Donate, "not-hex|hello", donorAddr, donateIntent("1.000"))
	require.NotNil(t, revert)
	assert.Equal(t, "abort", revert.Symbol)
	assert.Contains(t, revert.Msg, "invalid project id")
}

func TestEmptyPayloadAborts(t *testing.T) {
	setupTest()

	_, revert := callContract(CreateProject, "", creatorAddr)
	require.NotNil(t, revert)
	assert.Equal(t, "abort", revert.Symbol)
}

func TestInvalidIntentAssetAborts(t *testing.T) {
	setupTest()
	id := createTestProject(t, creatorAddr, "hive only", "")

	badIntent := sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": "1.000", "token": sdk.AssetHbd.String()},
	}
	_, revert := callContract(Donate, id.String()+"|", donorAddr, badIntent)
	require.NotNil(t, revert)
	assert.Equal(t, "abort", revert.Symbol)
	assert.Contains(t, revert.Msg, "invalid intent asset")
}
