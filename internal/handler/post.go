package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-service/internal/service"
	"github.com/maxviazov/board-service/pkg/response"
)

type PostHandler struct {
	svc service.BoardService
}

func NewPostHandler(svc service.BoardService) *PostHandler { return &PostHandler{svc: svc} }

func (h *PostHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/posts")
	{
		g.GET("", h.list)
		g.POST("", h.create)
		g.GET("/navigate", h.navigate)
		g.GET("/:post_id", h.getByID)
	}
}

type createPostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status string `json:"status"`
}

func listQuery(c *gin.Context, q *queryInts) service.ListQuery {
	return service.ListQuery{
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
		Tab:      c.Query("tab"),
		Sort:     c.Query("sort"),
		Page:     q.optional("page"),
		PageSize: q.optional("page_size"),
	}
}

func (h *PostHandler) list(c *gin.Context) {
	q := queryInts{c: c}
	lq := listQuery(c, &q)
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	page, err := h.svc.ListPosts(c.Request.Context(), lq)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

func (h *PostHandler) navigate(c *gin.Context) {
	q := queryInts{c: c}
	lq := listQuery(c, &q)
	target := q.required("target")
	if err := q.err(); err != nil {
		response.WriteError(c, err)
		return
	}
	page, err := h.svc.Navigate(c.Request.Context(), lq, target)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

func (h *PostHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("post_id"), 10, 64)
	post, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, post)
}

func (h *PostHandler) create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// parse details stay internal
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	post, err := h.svc.CreatePost(c.Request.Context(), req.Title, req.Author, req.Status)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, post)
}
