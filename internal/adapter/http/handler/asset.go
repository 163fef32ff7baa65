package handler

import (
	"net/http"
	"strconv"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
)

// SidebarImage godoc
// @Summary      Sidebar image
// @Description  Returns the decorative sidebar image scaled to the sidebar width
// @Tags         Assets
// @Produce      png
// @Success      200
// @Failure      404  {object}  map[string]any
// @Router       /assets/sidebar.png [get]
func (h *Dashboard) SidebarImage(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionLoadAsset)

	asset := h.s.SidebarImage(ctx)
	if !asset.OK() {
		notFoundResponse(w, h.translator(r).T(i18n.WarnImageNotFound))
		return
	}

	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(asset.Image)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(asset.Image); err != nil {
		h.l.Error(ctx, "failed to write image", err)
	}
}
