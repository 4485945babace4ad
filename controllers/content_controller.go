package controllers

import (
	"foundation-backend/models"
	"foundation-backend/services"
)

// โมดูลที่ใช้ CRUD มาตรฐานล้วน ๆ

type SlideController struct {
	*CrudController[models.SlideImage, SlideInput]
}

func NewSlideController(svc *services.ImageCrudService[models.SlideImage]) *SlideController {
	return &SlideController{NewCrudController[models.SlideImage, SlideInput](svc, plain(SlideInput.apply))}
}

type StaffController struct {
	*CrudController[models.Staff, DirectoryInput]
}

func NewStaffController(svc *services.ImageCrudService[models.Staff]) *StaffController {
	return &StaffController{NewCrudController[models.Staff, DirectoryInput](svc, plain(DirectoryInput.applyStaff))}
}

type PartnerController struct {
	*CrudController[models.Partner, PartnerInput]
}

func NewPartnerController(svc *services.ImageCrudService[models.Partner]) *PartnerController {
	return &PartnerController{NewCrudController[models.Partner, PartnerInput](svc, plain(PartnerInput.apply))}
}

type NavbarController struct {
	*CrudController[models.NavbarItem, NavItemInput]
}

func NewNavbarController(svc *services.CrudService[models.NavbarItem]) *NavbarController {
	return &NavbarController{NewCrudController[models.NavbarItem, NavItemInput](svc, plain(NavItemInput.apply))}
}

type SidebarController struct {
	*CrudController[models.AdminSidebarItem, SidebarItemInput]
}

func NewSidebarController(svc *services.CrudService[models.AdminSidebarItem]) *SidebarController {
	return &SidebarController{NewCrudController[models.AdminSidebarItem, SidebarItemInput](svc, plain(SidebarItemInput.apply))}
}
