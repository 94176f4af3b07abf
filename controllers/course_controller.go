package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CourseInput struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	CreditHours     *int     `json:"credit_hours"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	IsActive        *bool    `json:"is_active"`
}

type LectureInput struct {
	Title       string `json:"title" binding:"required"`
	VideoURL    string `json:"video_url"`
	Description string `json:"description"`
}

type QuizInput struct {
	Question      string `json:"question" binding:"required"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=A B C D"`
}

func courseResponse(course models.Course) gin.H {
	return gin.H{
		"course":      course,
		"final_price": course.FinalPrice(),
	}
}

func ListCourses(c *gin.Context) {
	courses, err := services.ListCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		out = append(out, courseResponse(course))
	}
	c.JSON(http.StatusOK, out)
}

func GetCourse(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var course models.Course
	err := config.DB.Preload("Lectures").Preload("Lectures.Quizzes").First(&course, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, courseResponse(course))
}

func CreateCourse(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := models.Course{
		Title:           input.Title,
		InstructorID:    &uid,
		Description:     input.Description,
		CreditHours:     input.CreditHours,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		IsActive:        true,
	}
	if input.StartDate != "" {
		t, _ := time.Parse("2006-01-02", input.StartDate)
		course.StartDate = &t
	}
	if input.EndDate != "" {
		t, _ := time.Parse("2006-01-02", input.EndDate)
		course.EndDate = &t
	}

	if err := config.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateCourseCache()
	c.JSON(http.StatusCreated, courseResponse(course))
}

// instructorCourse loads a course only if the acting user is its instructor.
func instructorCourse(c *gin.Context, courseID int) (*models.Course, bool) {
	uid := c.GetUint("userID")

	var course models.Course
	if err := config.DB.Where("id = ? AND instructor_id = ?", courseID, uid).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return nil, false
	}
	return &course, true
}

func UpdateCourse(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	course, ok := instructorCourse(c, id)
	if !ok {
		return
	}

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course.Title = input.Title
	course.Description = input.Description
	course.CreditHours = input.CreditHours
	course.Price = input.Price
	course.DiscountedPrice = input.DiscountedPrice
	if input.StartDate != "" {
		t, _ := time.Parse("2006-01-02", input.StartDate)
		course.StartDate = &t
	}
	if input.EndDate != "" {
		t, _ := time.Parse("2006-01-02", input.EndDate)
		course.EndDate = &t
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	if err := config.DB.Save(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateCourseCache()
	c.JSON(http.StatusOK, courseResponse(*course))
}

func DeleteCourse(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	course, ok := instructorCourse(c, id)
	if !ok {
		return
	}

	if err := config.DB.Delete(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateCourseCache()
	c.Status(http.StatusNoContent)
}

func PurchaseCourse(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	err := services.PurchaseCourse(uid, uint(id))
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyPurchased):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"status": "purchased"})
	}
}

// ListPurchasedCourses returns the courses the user has bought.
func ListPurchasedCourses(c *gin.Context) {
	uid := c.GetUint("userID")

	var courses []models.Course
	err := config.DB.
		Joins("JOIN course_purchases ON course_purchases.course_id = courses.id").
		Where("course_purchases.user_id = ? AND course_purchases.deleted_at IS NULL", uid).
		Preload("Lectures").
		Preload("Lectures.Quizzes").
		Find(&courses).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GET /courses/:id/lectures. Lecture content is only visible to the
// instructor and to purchasers.
func ListLectures(c *gin.Context) {
	uid := c.GetUint("userID")
	id, _ := strconv.Atoi(c.Param("id"))

	var course models.Course
	if err := config.DB.First(&course, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	owns := course.InstructorID != nil && *course.InstructorID == uid
	if !owns {
		purchased, err := services.HasPurchased(uid, course.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !purchased {
			c.JSON(http.StatusForbidden, gin.H{"error": "course not purchased"})
			return
		}
	}

	var lectures []models.VideoLecture
	if err := config.DB.Preload("Quizzes").Where("course_id = ?", course.ID).Find(&lectures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lectures)
}

func AddLecture(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	course, ok := instructorCourse(c, id)
	if !ok {
		return
	}

	var input LectureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lecture := models.VideoLecture{
		CourseID:    course.ID,
		Title:       input.Title,
		VideoURL:    input.VideoURL,
		Description: input.Description,
	}
	if err := config.DB.Create(&lecture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateCourseCache()
	c.JSON(http.StatusCreated, lecture)
}

// POST /courses/:id/lectures/:lectureId/quizzes
func AddQuiz(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	course, ok := instructorCourse(c, id)
	if !ok {
		return
	}
	lectureID, _ := strconv.Atoi(c.Param("lectureId"))

	var lecture models.VideoLecture
	if err := config.DB.Where("id = ? AND course_id = ?", lectureID, course.ID).First(&lecture).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lecture not found"})
		return
	}

	var input QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz := models.Quiz{
		VideoLectureID: lecture.ID,
		Question:       input.Question,
		OptionA:        input.OptionA,
		OptionB:        input.OptionB,
		OptionC:        input.OptionC,
		OptionD:        input.OptionD,
		CorrectAnswer:  input.CorrectAnswer,
	}
	if err := config.DB.Create(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.InvalidateCourseCache()
	c.JSON(http.StatusCreated, quiz)
}
