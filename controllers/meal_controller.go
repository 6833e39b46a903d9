package controllers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/Ambaks/campuseats/entity"
	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"
	"github.com/Ambaks/campuseats/utils"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 5 * 1024 * 1024

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

// POST /meals (Protected): multipart form, optional image file.
func (ctl *MealController) Create(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)

	var in services.CreateMealIn
	in.Name = c.PostForm("name")
	in.Description = c.PostForm("description")
	in.Ingredients = c.PostForm("ingredients")
	if in.Name == "" {
		resp.BadRequest(c, "name is required")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}
	in.Price = price

	if v := c.PostForm("quantity"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid quantity")
			return
		}
		in.Quantity = &q
	}
	in.Unlimited = c.PostForm("unlimited") == "true"

	if v := c.PostForm("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid latitude")
			return
		}
		in.Latitude = &lat
	}
	if v := c.PostForm("longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid longitude")
			return
		}
		in.Longitude = &lon
	}

	if v := c.PostForm("timeslots"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Timeslots); err != nil {
			resp.BadRequest(c, "invalid JSON for timeslots")
			return
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		data, contentType, err := readImageFile(file)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		in.Image = data
		in.ImageType = contentType
	}

	m, err := ctl.Svc.Create(sellerID, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, m)
}

// GET /meals/:id (Public)
func (ctl *MealController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	m, err := ctl.Svc.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /meals/:id/image (Public): serves the stored blob.
func (ctl *MealController) GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	m, err := ctl.Svc.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	if m.ImageSize == 0 {
		resp.NotFound(c, "meal has no image")
		return
	}
	c.Data(200, m.ImageType, m.Image)
}

// GET /meals/chef/:sellerId (Public)
func (ctl *MealController) ListBySeller(c *gin.Context) {
	meals, err := ctl.Svc.ListBySeller(c.Param("sellerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meals)
}

// GET /meals?lat=&lon=&radius=&skip=&limit= (Public)
func (ctl *MealController) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid lat")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid lon")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid radius")
		return
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	meals, err := ctl.Svc.Nearby(lat, lon, radius, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, meals)
}

// PUT /meals/:id (Protected, owner only): multipart like create, all
// fields optional.
func (ctl *MealController) Update(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	var in services.UpdateMealIn
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("ingredients"); ok {
		in.Ingredients = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid price")
			return
		}
		in.Price = &price
	}
	if v, ok := c.GetPostForm("quantity"); ok {
		q, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid quantity")
			return
		}
		in.Quantity = &q
	}
	if v, ok := c.GetPostForm("unlimited"); ok {
		u := v == "true"
		in.Unlimited = &u
	}
	if v, ok := c.GetPostForm("latitude"); ok {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid latitude")
			return
		}
		in.Latitude = &lat
	}
	if v, ok := c.GetPostForm("longitude"); ok {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			resp.BadRequest(c, "invalid longitude")
			return
		}
		in.Longitude = &lon
	}
	if v, ok := c.GetPostForm("timeslots"); ok {
		var ts entity.Timeslots
		if err := json.Unmarshal([]byte(v), &ts); err != nil {
			resp.BadRequest(c, "invalid JSON for timeslots")
			return
		}
		in.Timeslots = &ts
	}
	if file, err := c.FormFile("image"); err == nil {
		data, contentType, err := readImageFile(file)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		in.Image = data
		in.ImageType = contentType
	}

	m, err := ctl.Svc.Update(uint(id), sellerID, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /meals/:id (Protected, owner only)
func (ctl *MealController) Delete(c *gin.Context) {
	sellerID := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	if err := ctl.Svc.Delete(uint(id), sellerID); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "meal deleted"})
}

func readImageFile(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > maxImageBytes {
		return nil, "", errImageTooLarge
	}
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > maxImageBytes {
		return nil, "", errImageTooLarge
	}
	return data, file.Header.Get("Content-Type"), nil
}
