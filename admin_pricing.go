package tourweb

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/pricing"
	"github.com/eringen/tourweb/views"
)

func (a *App) handleAdminPlanNew(c echo.Context) error {
	plan := content.PricingPlan{Icon: content.DefaultPlanIcon, Period: "/month"}
	return a.renderPlanForm(c, http.StatusOK, plan, true, nil)
}

func (a *App) handleAdminPlanEdit(c echo.Context) error {
	plan, err := a.Pricing.Plan(c.Param("id"))
	if err != nil {
		return err
	}
	return a.renderPlanForm(c, http.StatusOK, plan, false, nil)
}

func (a *App) handleAdminPlanSave(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	plan := content.PricingPlan{
		ID:          strings.TrimSpace(c.FormValue("id")),
		Name:        strings.TrimSpace(c.FormValue("name")),
		Price:       strings.TrimSpace(c.FormValue("price")),
		Period:      strings.TrimSpace(c.FormValue("period")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Badge:       strings.TrimSpace(c.FormValue("badge")),
		Icon:        content.IconOrDefault(c.FormValue("icon")),
		Features:    SplitLines(c.FormValue("features")),
		CTAText:     strings.TrimSpace(c.FormValue("ctaText")),
		CTAURL:      strings.TrimSpace(c.FormValue("ctaUrl")),
		IsPopular:   c.FormValue("isPopular") == "true",
		Metadata: content.PlanMetadata{
			MetaTitle:       strings.TrimSpace(c.FormValue("metaTitle")),
			MetaDescription: strings.TrimSpace(c.FormValue("metaDescription")),
		},
	}
	isNew := plan.ID == ""
	if err := plan.Validate(); err != nil {
		return a.renderPlanForm(c, http.StatusUnprocessableEntity, plan, isNew, errorMessages(err))
	}

	if isNew {
		created := a.Pricing.CreatePlan(c.Request().Context(), pricing.PlanDraft{
			Name:        plan.Name,
			Price:       plan.Price,
			Period:      plan.Period,
			Description: plan.Description,
			Badge:       plan.Badge,
			Icon:        plan.Icon,
			Features:    plan.Features,
			CTAText:     plan.CTAText,
			CTAURL:      plan.CTAURL,
			IsPopular:   plan.IsPopular,
			Metadata:    plan.Metadata,
		})
		return redirectWithFlash(c, adminPricingURL, "Created plan “"+created.Name+"”.")
	}

	existing, err := a.Pricing.Plan(plan.ID)
	if err != nil {
		return err
	}
	plan.Order = existing.Order
	if err := a.Pricing.UpdatePlan(c.Request().Context(), plan); err != nil {
		return err
	}
	return redirectWithFlash(c, adminPricingURL, "Saved plan “"+plan.Name+"”.")
}

func (a *App) handleAdminPlanDelete(c echo.Context) error {
	a.Pricing.DeletePlan(c.Request().Context(), c.Param("id"))
	return redirectWithFlash(c, adminPricingURL, "Plan deleted.")
}

func (a *App) handleAdminPlanMove(c echo.Context) error {
	dir := pricing.Direction(c.FormValue("direction"))
	if dir != pricing.Up && dir != pricing.Down {
		return echo.NewHTTPError(http.StatusBadRequest, "direction must be up or down")
	}
	a.Pricing.ReorderPlan(c.Request().Context(), c.Param("id"), dir)
	return c.Redirect(http.StatusSeeOther, adminPricingURL)
}

func (a *App) handleAdminSettings(c echo.Context) error {
	return a.renderSettingsForm(c, http.StatusOK, a.Pricing.Settings(), nil)
}

func (a *App) handleAdminSettingsSave(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	settings := content.PricingSettings{
		PlansPerRow:         formInt(c.FormValue("plansPerRow")),
		Layout:              c.FormValue("layout"),
		ShowComparisonTable: c.FormValue("showComparisonTable") == "true",
		ButtonStyle:         c.FormValue("buttonStyle"),
		Responsive: content.ResponsiveSettings{
			Mobile: content.BreakpointSettings{
				PlansPerRow:  formInt(c.FormValue("mobilePlansPerRow")),
				ShowFeatures: formInt(c.FormValue("mobileShowFeatures")),
			},
			Tablet: content.BreakpointSettings{
				PlansPerRow:  formInt(c.FormValue("tabletPlansPerRow")),
				ShowFeatures: formInt(c.FormValue("tabletShowFeatures")),
			},
		},
	}
	if err := settings.Validate(); err != nil {
		return a.renderSettingsForm(c, http.StatusUnprocessableEntity, settings, errorMessages(err))
	}
	a.Pricing.UpdateSettings(c.Request().Context(), settings)
	return redirectWithFlash(c, adminPricingURL, "Pricing settings saved.")
}

func (a *App) renderPlanForm(c echo.Context, code int, plan content.PricingPlan, isNew bool, errs []string) error {
	title := "Edit Plan"
	if isNew {
		title = "New Plan"
	}
	return RenderStatus(c, code, a.Views.AdminPlanForm(views.PlanForm{
		Site:      a.site(),
		Meta:      a.meta(title, "", "admin", "pricing"),
		CSRFToken: CsrfToken(c),
		Plan:      plan,
		IsNew:     isNew,
		Icons:     content.PlanIcons,
		Errors:    errs,
	}))
}

func (a *App) renderSettingsForm(c echo.Context, code int, settings content.PricingSettings, errs []string) error {
	return RenderStatus(c, code, a.Views.AdminSettings(views.SettingsForm{
		Site:      a.site(),
		Meta:      a.meta("Pricing Settings", "", "admin", "pricing", "settings"),
		CSRFToken: CsrfToken(c),
		Settings:  settings,
		Errors:    errs,
	}))
}
