package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leadpanel/services"
)

// findOrCreateSettings returns the settings singleton, creating an empty one
// if the seed never ran.
func findOrCreateSettings(app *pocketbase.PocketBase) (*core.Record, error) {
	rec, err := app.FindFirstRecordByFilter("settings", "id != ''")
	if err == nil {
		return rec, nil
	}

	col, err := app.FindCollectionByNameOrId("settings")
	if err != nil {
		return nil, err
	}
	rec = core.NewRecord(col)
	if err := app.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// HandleSettingsGet returns the company profile.
func HandleSettingsGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := findOrCreateSettings(app)
		if err != nil {
			log.Printf("settings: could not load settings: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, services.ProfileFromRecord(rec))
	}
}

// HandleSettingsSave merge-saves the text fields of the company profile.
// The logo has its own upload endpoint and is left untouched here.
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rec, err := findOrCreateSettings(app)
		if err != nil {
			log.Printf("settings: could not load settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec.Set("name", strings.TrimSpace(e.Request.FormValue("name")))
		rec.Set("address", strings.TrimSpace(e.Request.FormValue("address")))
		rec.Set("gstin", strings.TrimSpace(e.Request.FormValue("gstin")))
		rec.Set("payment_terms", strings.TrimSpace(e.Request.FormValue("payment_terms")))

		if err := app.Save(rec); err != nil {
			log.Printf("settings: could not save settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Settings saved")
		return e.JSON(http.StatusOK, services.ProfileFromRecord(rec))
	}
}

// HandleSettingsLogoUpload stores an uploaded logo as a data URI on the
// settings singleton. Uploads over the size cap or with non-image content
// are rejected before anything is written.
func HandleSettingsLogoUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(services.MaxLogoBytes + 4096); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid upload")
		}

		file, _, err := e.Request.FormFile("logo")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Missing logo file")
		}
		defer file.Close()

		// Read one byte past the cap so oversize uploads are detected
		// without buffering arbitrarily large bodies.
		data, err := io.ReadAll(io.LimitReader(file, services.MaxLogoBytes+1))
		if err != nil {
			log.Printf("settings: could not read logo upload: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		dataURI, err := services.EncodeLogoDataURI(data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLogoTooLarge):
				return ErrorToast(e, http.StatusRequestEntityTooLarge, "Logo must be 1MB or smaller")
			case errors.Is(err, services.ErrLogoNotImage):
				return ErrorToast(e, http.StatusBadRequest, "Logo must be an image file")
			default:
				log.Printf("settings: could not encode logo: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		rec, err := findOrCreateSettings(app)
		if err != nil {
			log.Printf("settings: could not load settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec.Set("logo_data_uri", dataURI)
		if err := app.Save(rec); err != nil {
			log.Printf("settings: could not save logo: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Logo updated")
		return e.JSON(http.StatusOK, services.ProfileFromRecord(rec))
	}
}
