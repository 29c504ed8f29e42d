package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/shopcart/shop-api/dtos"
	"github.com/shopcart/shop-api/services"
)

type ProductController struct {
	productService services.ProductService
}

func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.productService.GetAllProducts()
	if err != nil {
		log.Println("Failed to fetch products:", err)
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.productService.GetProductByID(ctx.Param("id"))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dtos.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.productService.CreateProduct(req)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages pushes multipart files to S3 and appends the
// resulting URLs to the product's image list.
func (c *ProductController) UploadProductImages(ctx *gin.Context) {
	productID := ctx.Param("id")

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	// Validate the product before touching S3.
	if _, err := c.productService.GetProductByID(productID); err != nil {
		sendServiceError(ctx, err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	bucket := os.Getenv("S3_BUCKET")

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so repeated filenames never overwrite each other.
		uniqueFilename := fmt.Sprintf("%s-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	product, err := c.productService.AddProductImages(productID, uploadedUrls)
	if err != nil {
		log.Printf("Error saving image URLs: %v", err)
		sendServiceError(ctx, err)
		return
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
		"product": product,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
