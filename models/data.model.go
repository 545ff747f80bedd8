package models

// DataName holds the display names of a catalog item.
type DataName struct {
	Shortname string `bson:"shortname" json:"shortname"`
	Fullname  string `bson:"fullname" json:"fullname"`
}

// DataImages holds the image URLs of a catalog item.
type DataImages struct {
	MainImg string `bson:"mainImg" json:"mainImg"`
	Img1    string `bson:"img1" json:"img1"`
	Img2    string `bson:"img2" json:"img2"`
	Img3    string `bson:"img3" json:"img3"`
}

// DataRatings holds the aggregated customer rating of a catalog item.
type DataRatings struct {
	Rating   float64 `bson:"rating" json:"rating"`
	RatingNo int     `bson:"ratingNo" json:"ratingNo"`
}

// Data represents a catalog item.
type Data struct {
	ID           int         `bson:"id" json:"id"`
	Name         DataName    `bson:"name" json:"name"`
	Color        string      `bson:"color" json:"color"`
	Type         string      `bson:"type" json:"type"`
	ImageURL     DataImages  `bson:"imageUrl" json:"imageUrl"`
	Ratings      DataRatings `bson:"ratings" json:"ratings"`
	Price        float64     `bson:"price" json:"price"`
	Description  string      `bson:"description" json:"description"`
	Availability string      `bson:"availability" json:"availability"`
}
