package tourweb

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/tourweb/blog"
	"github.com/eringen/tourweb/content"
	"github.com/eringen/tourweb/pricing"
	"github.com/eringen/tourweb/views"
)

const (
	adminBlogURL    = "/admin/blog/?section=blog"
	adminPricingURL = "/admin/blog/?section=pricing"
)

func (a *App) handleAdmin(c echo.Context) error {
	section := c.QueryParam("section")
	if section != views.SectionPricing {
		section = views.SectionBlog
	}
	search := strings.TrimSpace(c.QueryParam("q"))

	plans := pricing.Visible(a.Pricing.Plans())
	settings := a.Pricing.Settings()
	return Render(c, a.Views.Admin(views.AdminPage{
		Site:      a.site(),
		Meta:      a.meta("Admin", "", "admin", "blog"),
		Section:   section,
		Flashes:   Flashes(c),
		CSRFToken: CsrfToken(c),
		Search:    search,
		Posts:     blog.AdminFilter(a.Blog.Posts(), search),
		Plans:     plans,
		Settings:  settings,
		Preview: views.PricingSection{
			Plans:    plans,
			Settings: settings,
			Columns:  pricing.GridColumns(len(plans), settings),
		},
	}))
}

func (a *App) handleAdminPostNew(c echo.Context) error {
	return a.renderPostForm(c, http.StatusOK, content.BlogPost{}, true, nil)
}

func (a *App) handleAdminPostEdit(c echo.Context) error {
	post, err := a.Blog.Post(c.Param("id"))
	if err != nil {
		return err
	}
	return a.renderPostForm(c, http.StatusOK, post, false, nil)
}

func (a *App) handleAdminPostSave(c echo.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	post := content.BlogPost{
		ID:       strings.TrimSpace(c.FormValue("id")),
		Title:    strings.TrimSpace(c.FormValue("title")),
		Summary:  strings.TrimSpace(c.FormValue("summary")),
		Content:  strings.ReplaceAll(c.FormValue("content"), "\r\n", "\n"),
		Author:   strings.TrimSpace(c.FormValue("author")),
		ImageURL: strings.TrimSpace(c.FormValue("imageUrl")),
		Category: strings.TrimSpace(c.FormValue("category")),
		Tags:     SplitTags(c.FormValue("tags")),
	}
	isNew := post.ID == ""
	if err := post.Validate(); err != nil {
		return a.renderPostForm(c, http.StatusUnprocessableEntity, post, isNew, errorMessages(err))
	}

	if isNew {
		created := a.Blog.CreatePost(c.Request().Context(), blog.Draft{
			Title:    post.Title,
			Summary:  post.Summary,
			Content:  post.Content,
			Author:   post.Author,
			ImageURL: post.ImageURL,
			Category: post.Category,
			Tags:     post.Tags,
		})
		return redirectWithFlash(c, adminBlogURL, "Created “"+created.Title+"”.")
	}

	existing, err := a.Blog.Post(post.ID)
	if err != nil {
		return err
	}
	post.Date = existing.Date
	updated, err := a.Blog.UpdatePost(c.Request().Context(), post)
	if err != nil {
		return err
	}
	return redirectWithFlash(c, adminBlogURL, "Saved “"+updated.Title+"”.")
}

func (a *App) handleAdminPostDelete(c echo.Context) error {
	a.Blog.DeletePost(c.Request().Context(), c.Param("id"))
	return redirectWithFlash(c, adminBlogURL, "Post deleted.")
}

func (a *App) renderPostForm(c echo.Context, code int, post content.BlogPost, isNew bool, errs []string) error {
	title := "Edit Post"
	if isNew {
		title = "New Post"
	}
	return RenderStatus(c, code, a.Views.AdminPostForm(views.PostForm{
		Site:      a.site(),
		Meta:      a.meta(title, "", "admin", "blog"),
		CSRFToken: CsrfToken(c),
		Post:      post,
		IsNew:     isNew,
		Errors:    errs,
	}))
}
