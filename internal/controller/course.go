package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/model"
	"github.com/psucert/certserve/internal/repository"
	"github.com/psucert/certserve/internal/util"
	"gorm.io/gorm"
)

type CourseController struct {
	*baseController
}

func (cc CourseController) GetCourses(ctx *gin.Context) {
	courses, err := cc.app.Repository.Course.GetAll(ctx, nil)
	if err != nil {
		cc.app.Logger.Errorf("Failed to list courses: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to list courses")
		return
	}

	list := make([]gin.H, len(courses))
	for i, c := range courses {
		list[i] = gin.H{"id": c.ID, "title": c.Title}
	}

	util.ResponseJSON(ctx, http.StatusOK, list)
}

func (cc CourseController) AddCourse(ctx *gin.Context) {
	type AddCourseRequest struct {
		Title string `json:"title" binding:"required,strNotEmpty"`
	}

	var req AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Course title is required")
		return
	}

	course, err := cc.app.Repository.Course.Create(ctx, nil, &model.Course{Title: req.Title})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCourseTitle) {
			util.ResponseMessage(ctx, http.StatusBadRequest, "Course already exists")
			return
		}
		cc.app.Logger.Errorf("Failed to create course: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to create course")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"message": "Course added successfully",
		"id":      course.ID,
	})
}

// DeleteCourse removes a course that no certificate references. Courses with
// issued certificates are protected, deleting them would orphan the course
// title shown on verification.
func (cc CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Invalid course id")
		return
	}

	referencing, err := cc.app.Repository.Course.CountCertificates(ctx, nil, uint(id))
	if err != nil {
		cc.app.Logger.Errorf("Failed to count referencing certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	if referencing > 0 {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Course has issued certificates and cannot be deleted")
		return
	}

	if err := cc.app.Repository.Course.Delete(ctx, nil, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseMessage(ctx, http.StatusNotFound, "Course not found")
			return
		}
		cc.app.Logger.Errorf("Failed to delete course: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to delete course")
		return
	}

	util.ResponseMessage(ctx, http.StatusOK, "Course deleted successfully")
}
