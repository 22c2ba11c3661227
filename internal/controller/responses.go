package controller

import (
	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

type AuthorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func newAuthorResponse(author entity.Author) AuthorResponse {
	return AuthorResponse{
		ID:        author.ID,
		Name:      author.Name,
		BirthDate: author.BirthDate.Format(dateLayout),
	}
}

type BookResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Price         int64  `json:"price"`
	PublishStatus string `json:"publishStatus"`
}

func newBookResponse(book entity.Book) BookResponse {
	return BookResponse{
		ID:            book.ID(),
		Title:         book.Title(),
		Price:         book.Price(),
		PublishStatus: string(book.Status()),
	}
}

type BookWithAuthorsResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Price         int64            `json:"price"`
	PublishStatus string           `json:"publishStatus"`
	Authors       []AuthorResponse `json:"authors"`
}

func newBookWithAuthorsResponse(book entity.Book, authors []entity.Author) BookWithAuthorsResponse {
	return BookWithAuthorsResponse{
		ID:            book.ID(),
		Title:         book.Title(),
		Price:         book.Price(),
		PublishStatus: string(book.Status()),
		Authors:       lo.Map(authors, func(author entity.Author, _ int) AuthorResponse { return newAuthorResponse(author) }),
	}
}

type AuthorBooksResponse struct {
	AuthorID   int64          `json:"authorId"`
	AuthorName string         `json:"authorName"`
	Books      []BookResponse `json:"books"`
}

func newAuthorBooksResponse(author entity.Author, books []entity.Book) AuthorBooksResponse {
	return AuthorBooksResponse{
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Books:      lo.Map(books, func(book entity.Book, _ int) BookResponse { return newBookResponse(book) }),
	}
}
