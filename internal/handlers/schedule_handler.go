package handlers

import (
	"errors"
	"net/http"

	"github.com/Madiyar4565/Travel_Scheduler/internal/filestore"
	"github.com/Madiyar4565/Travel_Scheduler/internal/models"
	"github.com/Madiyar4565/Travel_Scheduler/internal/services"
	"github.com/gorilla/mux"
)

// maxFormMemory is the in-memory threshold for multipart parsing;
// larger parts spill to temporary files.
const maxFormMemory = 10 << 20

// ScheduleHandler orchestrates the schedule endpoints: file storage,
// validation and persistence, with cleanup of freshly written files
// when a later step fails.
type ScheduleHandler struct {
	Service *services.ScheduleService
	Files   *filestore.Store
}

func NewScheduleHandler(service *services.ScheduleService, files *filestore.Store) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Files: files}
}

// storeUploadedImage pulls the optional "image" form file and hands it
// to the file store. A request without a file yields (nil, nil).
func (h *ScheduleHandler) storeUploadedImage(r *http.Request) (*models.ScheduleImage, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	return h.Files.Save(file, header.Filename, header.Header.Get("Content-Type"))
}

// GetSchedulesHandler returns every schedule entry as a JSON array.
func (h *ScheduleHandler) GetSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Service.GetAllSchedules(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	if schedules == nil {
		schedules = []models.Schedule{}
	}
	respondJSON(w, http.StatusOK, schedules)
}

// CreateScheduleHandler handles creation of a new schedule entry with
// an optional image upload. The file is stored first; if validation or
// persistence fails afterwards the file is removed again so no orphan
// is left behind.
func (h *ScheduleHandler) CreateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	image, err := h.storeUploadedImage(r)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	schedule := &models.Schedule{
		Destination: r.FormValue("destination"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Image:       image,
	}

	created, err := h.Service.CreateSchedule(r.Context(), schedule)
	if err != nil {
		if image != nil {
			h.Files.Delete(image.Path)
		}
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Schedule created successfully",
		"data":    created,
	})
}

// UpdateScheduleHandler applies a partial update to a schedule entry,
// optionally replacing its image. The previous image file is deleted
// only after the record update has succeeded; if anything fails the
// newly uploaded file is removed and the old one kept.
func (h *ScheduleHandler) UpdateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	image, err := h.storeUploadedImage(r)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	changes := &models.Schedule{
		Destination: r.FormValue("destination"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Image:       image,
	}

	updated, replaced, err := h.Service.UpdateSchedule(r.Context(), id, changes)
	if err != nil {
		if image != nil {
			h.Files.Delete(image.Path)
		}
		respondError(w, statusForError(err), err.Error())
		return
	}

	if replaced != nil {
		h.Files.Delete(replaced.Path)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Schedule updated successfully",
		"data":    updated,
	})
}

// DeleteScheduleHandler removes a schedule entry together with its
// stored image file, if it has one.
func (h *ScheduleHandler) DeleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	image, err := h.Service.DeleteSchedule(r.Context(), id)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	if image != nil {
		h.Files.Delete(image.Path)
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Schedule deleted successfully",
	})
}
