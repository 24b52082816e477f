package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGalaxyCreateNeedsNoCredential(t *testing.T) {
	ts := newTestServer(t)
	uid := ts.seedUser(t, "alice", "pw", "Alice", "Anders")

	body := fmt.Sprintf(`{"galaxy_name":"Andromeda","added_by":%d}`, uid)
	rec := ts.do(http.MethodPost, "/galaxies", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode(t, rec)
	require.Equal(t, "Galaxy successfully registered.", resp["message"])
	result := resp["result"].(map[string]any)
	require.Equal(t, "Andromeda", result["galaxy_name"])
	require.NotZero(t, result["galaxy_id"])
}

func TestGalaxyRetrieveResolvesAttribution(t *testing.T) {
	ts := newTestServer(t)
	uid := ts.seedUser(t, "alice", "pw", "Alice", "Anders")

	body := fmt.Sprintf(`{"galaxy_name":"Andromeda","galaxy_type":"spiral","distance_mly":2.5,"added_by":%d}`, uid)
	rec := ts.do(http.MethodPost, "/galaxies", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["result"].(map[string]any)["galaxy_id"].(float64)

	rec = ts.do(http.MethodGet, fmt.Sprintf("/galaxies/%.0f", id), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode(t, rec)["result"].(map[string]any)
	require.Equal(t, "Andromeda", result["galaxy_name"])
	require.Equal(t, "spiral", result["galaxy_type"])
	require.Equal(t, 2.5, result["distance_mly"])

	addedBy := result["added_by"].(map[string]any)
	require.Equal(t, float64(uid), addedBy["user_id"])
	require.Equal(t, "Alice Anders", addedBy["full_name"])
	// verified_by was never set and renders as an empty object.
	require.Empty(t, result["verified_by"].(map[string]any))
}

func TestGalaxyRetrieveMissing(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/galaxies/999", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Galaxy not found.", decode(t, rec)["message"])
}

func TestGalaxyPartialUpdateKeepsOmittedFields(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/galaxies", `{"galaxy_name":"Andromeda","galaxy_type":"spiral","distance_mly":2.5}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodPut, "/galaxies/1", `{"distance_mly":2.537}`, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "Galaxy successfully updated.", decode(t, rec)["message"])

	rec = ts.do(http.MethodGet, "/galaxies/1", "", "")
	result := decode(t, rec)["result"].(map[string]any)
	require.Equal(t, "Andromeda", result["galaxy_name"]) // untouched
	require.Equal(t, "spiral", result["galaxy_type"])    // untouched
	require.Equal(t, 2.537, result["distance_mly"])      // patched
}

func TestGalaxyUpdateBodyIDIsIgnored(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/galaxies", `{"galaxy_name":"Andromeda"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// The path id wins; galaxy_id in the body is not a patchable field.
	rec = ts.do(http.MethodPut, "/galaxies/1", `{"galaxy_id":42,"galaxy_name":"M31"}`, "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = ts.do(http.MethodGet, "/galaxies/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)["result"].(map[string]any)
	require.Equal(t, float64(1), result["galaxy_id"])
	require.Equal(t, "M31", result["galaxy_name"])

	rec = ts.do(http.MethodGet, "/galaxies/42", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGalaxyUpdateMissingTarget(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/galaxies/999", `{"galaxy_name":"X"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Galaxy to update not found.", decode(t, rec)["message"])
}

func TestGalaxyDelete(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/galaxies", `{"galaxy_name":"Andromeda"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodDelete, "/galaxies/1", "", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodDelete, "/galaxies/1", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Galaxy to delete not found.", decode(t, rec)["message"])
}

func TestGalaxyListEmpty(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/galaxies", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	result, ok := body["result"].([]any)
	require.True(t, ok, "result must be a JSON array, not null")
	require.Empty(t, result)
}

func TestGalaxyListReturnsSummaries(t *testing.T) {
	ts := newTestServer(t)

	for _, name := range []string{"Andromeda", "Milky Way", "Triangulum"} {
		rec := ts.do(http.MethodPost, "/galaxies", fmt.Sprintf(`{"galaxy_name":%q,"galaxy_type":"spiral"}`, name), "")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.do(http.MethodGet, "/galaxies", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode(t, rec)["result"].([]any)
	require.Len(t, result, 3)
	first := result[0].(map[string]any)
	require.Equal(t, "Andromeda", first["galaxy_name"])
	// Summaries carry no domain attributes.
	require.NotContains(t, first, "galaxy_type")
}

func TestGalaxyCreateMissingName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/galaxies", `{"galaxy_type":"spiral"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decode(t, rec)["errors"].(map[string]any)
	require.Contains(t, errs, "galaxy_name")
}

func TestDeletedUserProjectsAsEmptyAttribution(t *testing.T) {
	ts := newTestServer(t)
	uid := ts.seedUser(t, "alice", "pw", "Alice", "Anders")
	token := ts.token(t, "alice")

	rec := ts.do(http.MethodPost, "/galaxies", fmt.Sprintf(`{"galaxy_name":"Andromeda","added_by":%d}`, uid), "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodDelete, fmt.Sprintf("/users/%d", uid), "", token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodGet, "/galaxies/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)["result"].(map[string]any)
	require.Empty(t, result["added_by"].(map[string]any))
}
